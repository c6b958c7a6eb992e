/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: Observation table for the Akaylee Learner. Maintains the
prefix-closed access strings S, the suffix-closed experiments E, and the
membership map over (S ∪ S·Σ) × E as appendable bit rows. Provides the
closedness and consistency checks, counterexample absorption, and extraction
of the hypothesis automaton.
*/

package learner

import (
	"fmt"
	"sort"

	"github.com/kleascm/akaylee-learner/pkg/automaton"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
)

// tableRow is one row of the observation table: an access string and its
// observed bits, one per experiment in E's current order. Rows only ever
// grow; bits are appended when experiments are added.
type tableRow struct {
	access interfaces.Word
	key    string // rendered access string
	bits   []byte // '0' or '1' per experiment
}

// signature returns the row vector as a comparable key. Two access strings
// are row-equivalent iff their signatures are equal.
func (r *tableRow) signature() string {
	return string(r.bits)
}

// Table is the observation table (S, E, R). The upper rows are the access
// strings S; the border rows are S·Σ \ S. Both sets and E grow
// monotonically within a session, and every row is fully filled whenever a
// public operation returns.
type Table struct {
	alpha   interfaces.Alphabet
	adapter *oracle.Adapter
	upper   map[string]*tableRow
	border  map[string]*tableRow
	exps    []interfaces.Word
	expKeys []string // rendered experiments, parallel to exps
}

// NewTable initializes the table with S = E = {ε} and fills the row of ε and
// its one-symbol extensions through the adapter.
func NewTable(alpha interfaces.Alphabet, adapter *oracle.Adapter) (*Table, error) {
	t := &Table{
		alpha:   alpha,
		adapter: adapter,
		upper:   make(map[string]*tableRow),
		border:  make(map[string]*tableRow),
		exps:    []interfaces.Word{{}},
		expKeys: []string{""},
	}
	if err := t.promote(interfaces.Word{}); err != nil {
		return nil, err
	}
	return t, nil
}

// fillRow queries the adapter for every experiment the row does not yet
// cover
func (t *Table) fillRow(r *tableRow) error {
	for i := len(r.bits); i < len(t.exps); i++ {
		answer, err := t.adapter.Query(r.key + t.expKeys[i])
		if err != nil {
			return err
		}
		if answer {
			r.bits = append(r.bits, '1')
		} else {
			r.bits = append(r.bits, '0')
		}
	}
	return nil
}

// promote moves an access string into S, creating its row if needed, and
// materializes the border rows of its one-symbol extensions
func (t *Table) promote(w interfaces.Word) error {
	key := t.alpha.Render(w)
	row, ok := t.border[key]
	if ok {
		delete(t.border, key)
	} else {
		row = &tableRow{access: w.Clone(), key: key}
	}
	t.upper[key] = row
	if err := t.fillRow(row); err != nil {
		return err
	}
	for sym := range t.alpha {
		child := w.Extend(sym)
		childKey := t.alpha.Render(child)
		if _, ok := t.upper[childKey]; ok {
			continue
		}
		if _, ok := t.border[childKey]; ok {
			continue
		}
		childRow := &tableRow{access: child, key: childKey}
		if err := t.fillRow(childRow); err != nil {
			return err
		}
		t.border[childKey] = childRow
	}
	return nil
}

// sortedRows returns the rows of a map ordered length-then-lexicographically
// by access string, using the alphabet's symbol order
func sortedRows(rows map[string]*tableRow) []*tableRow {
	out := make([]*tableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].access.Compare(out[j].access) < 0
	})
	return out
}

// rowFor looks up the row of a word in S ∪ S·Σ
func (t *Table) rowFor(w interfaces.Word) *tableRow {
	key := t.alpha.Render(w)
	if r, ok := t.upper[key]; ok {
		return r
	}
	return t.border[key]
}

// IsClosed reports whether every border row has an equivalent upper row.
// When not closed it returns the least border access string (length-lex
// order) whose row is novel.
func (t *Table) IsClosed() (bool, interfaces.Word) {
	sigs := make(map[string]bool, len(t.upper))
	for _, r := range t.upper {
		sigs[r.signature()] = true
	}
	for _, r := range sortedRows(t.border) {
		if !sigs[r.signature()] {
			return false, r.access
		}
	}
	return true, nil
}

// Close promotes a closedness witness into S and extends the table with its
// one-symbol extensions
func (t *Table) Close(witness interfaces.Word) error {
	key := t.alpha.Render(witness)
	if _, ok := t.upper[key]; ok {
		return fmt.Errorf("closedness witness %q is already an access string", key)
	}
	if _, ok := t.border[key]; !ok {
		return fmt.Errorf("closedness witness %q is not a border row", key)
	}
	return t.promote(witness)
}

// IsConsistent reports whether row-equivalent access strings stay
// row-equivalent under every one-symbol extension. When not consistent it
// returns the least experiment a·e (length-lex order) that separates some
// equivalent pair.
func (t *Table) IsConsistent() (bool, interfaces.Word) {
	rows := sortedRows(t.upper)
	groups := make(map[string][]*tableRow)
	for _, r := range rows {
		sig := r.signature()
		groups[sig] = append(groups[sig], r)
	}

	var best interfaces.Word
	for _, r := range rows {
		group := groups[r.signature()]
		if len(group) < 2 || group[0] != r {
			continue // handle each class once, from its least member
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				for sym := range t.alpha {
					r1 := t.rowFor(group[i].access.Extend(sym))
					r2 := t.rowFor(group[j].access.Extend(sym))
					for e := range t.exps {
						if r1.bits[e] == r2.bits[e] {
							continue
						}
						candidate := interfaces.Word{sym}.Concat(t.exps[e])
						if best == nil || candidate.Compare(best) < 0 {
							best = candidate
						}
					}
				}
			}
		}
	}
	if best != nil {
		return false, best
	}
	return true, nil
}

// AddExperiment appends a distinguishing suffix to E and fills the new
// column of every row. E stays suffix-closed because every added experiment
// is a one-symbol extension of an existing one.
func (t *Table) AddExperiment(e interfaces.Word) error {
	key := t.alpha.Render(e)
	for _, existing := range t.expKeys {
		if existing == key {
			return fmt.Errorf("experiment %q is already a column", key)
		}
	}
	t.exps = append(t.exps, e.Clone())
	t.expKeys = append(t.expKeys, key)
	// fill in length-lex order so the oracle sees a deterministic query order
	for _, r := range sortedRows(t.upper) {
		if err := t.fillRow(r); err != nil {
			return err
		}
	}
	for _, r := range sortedRows(t.border) {
		if err := t.fillRow(r); err != nil {
			return err
		}
	}
	return nil
}

// Absorb adds every non-empty prefix of a counterexample to S, longest
// first so a prefix never sits in both S and the border, then extends the
// table accordingly. The caller re-checks closedness and consistency.
func (t *Table) Absorb(ce interfaces.Word) error {
	if len(ce) == 0 {
		return fmt.Errorf("counterexample must not be empty")
	}
	for i := len(ce); i >= 1; i-- {
		prefix := ce[:i]
		if _, ok := t.upper[t.alpha.Render(prefix)]; ok {
			continue
		}
		if err := t.promote(prefix); err != nil {
			return err
		}
	}
	return nil
}

// ToDFA extracts the hypothesis automaton from a closed and consistent
// table. States are the row classes of S, named by their canonical access
// string (shortest, then lexicographically least) and numbered in length-lex
// order of those representatives; the class of ε is therefore state 0.
func (t *Table) ToDFA() (*automaton.DFA, error) {
	if closed, witness := t.IsClosed(); !closed {
		return nil, fmt.Errorf("observation table is not closed (witness %q)", t.alpha.Render(witness))
	}
	if consistent, exp := t.IsConsistent(); !consistent {
		return nil, fmt.Errorf("observation table is not consistent (experiment %q)", t.alpha.Render(exp))
	}

	rows := sortedRows(t.upper)
	sigToState := make(map[string]int)
	reps := []*tableRow{}
	for _, r := range rows {
		if _, ok := sigToState[r.signature()]; !ok {
			sigToState[r.signature()] = len(reps)
			reps = append(reps, r)
		}
	}

	d := &automaton.DFA{
		Alphabet:  t.alpha,
		Labels:    make([]string, len(reps)),
		Start:     sigToState[t.upper[""].signature()],
		Accepting: make([]bool, len(reps)),
		Delta:     make([][]int, len(reps)),
	}
	for q, rep := range reps {
		d.Labels[q] = rep.key
		d.Accepting[q] = rep.bits[0] == '1'
		outs := make([]int, len(t.alpha))
		for sym := range t.alpha {
			child := t.rowFor(rep.access.Extend(sym))
			if child == nil {
				return nil, fmt.Errorf("missing row for %q", rep.key+string(t.alpha[sym]))
			}
			state, ok := sigToState[child.signature()]
			if !ok {
				return nil, fmt.Errorf("row of %q has no class in S", child.key)
			}
			outs[sym] = state
		}
		d.Delta[q] = outs
	}
	return d, nil
}

// NumRows returns the number of access strings in S
func (t *Table) NumRows() int {
	return len(t.upper)
}

// NumExperiments returns the number of experiments in E
func (t *Table) NumExperiments() int {
	return len(t.exps)
}

// Size returns the number of filled cells over (S ∪ S·Σ) × E
func (t *Table) Size() int {
	return (len(t.upper) + len(t.border)) * len(t.exps)
}

// AccessStrings returns the rendered access strings of S in length-lex order
func (t *Table) AccessStrings() []string {
	rows := sortedRows(t.upper)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.key
	}
	return out
}

// Experiments returns the rendered experiments of E in insertion order
func (t *Table) Experiments() []string {
	out := make([]string, len(t.expKeys))
	copy(out, t.expKeys)
	return out
}
