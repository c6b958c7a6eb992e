/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dfa.go
Description: Immutable deterministic finite automaton value for the Akaylee
Learner. States are numbered 0..n-1 and the transition function is a dense
index table, so the possibly cyclic transition graph carries no pointer
ownership. Supports acceptance evaluation, incremental walks, and a readable
description for downstream consumers.
*/

package automaton

import (
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
)

// DFA is a complete deterministic finite automaton. Labels hold the
// canonical access string of each state as chosen during extraction; they
// are informational only and play no role in evaluation. A DFA produced by
// the learner is total and every state is reachable from Start.
type DFA struct {
	Alphabet  interfaces.Alphabet `json:"alphabet"`
	Labels    []string            `json:"labels"`
	Start     int                 `json:"start"`
	Accepting []bool              `json:"accepting"`
	Delta     [][]int             `json:"delta"` // Delta[state][symbol] = next state
}

// NumStates returns the number of states
func (d *DFA) NumStates() int {
	return len(d.Delta)
}

// Step applies the transition function to a single symbol index
func (d *DFA) Step(state, sym int) int {
	return d.Delta[state][sym]
}

// Walk runs the word from the given state and returns the end state. Used
// by the counterexample search for incremental evaluation.
func (d *DFA) Walk(state int, w interfaces.Word) int {
	for _, sym := range w {
		state = d.Delta[state][sym]
	}
	return state
}

// AcceptsWord evaluates acceptance of a word of symbol indices
func (d *DFA) AcceptsWord(w interfaces.Word) bool {
	return d.Accepting[d.Walk(d.Start, w)]
}

// Accepts evaluates acceptance of a plain string. Every rune of the string
// must be a symbol of the automaton's alphabet.
func (d *DFA) Accepts(word string) (bool, error) {
	w, err := d.Alphabet.Parse(word)
	if err != nil {
		return false, err
	}
	return d.AcceptsWord(w), nil
}

// Validate checks structural well-formedness: a non-empty state set, a
// transition table total over states and symbols, and reachability of every
// state from the start state.
func (d *DFA) Validate() error {
	n := len(d.Delta)
	if n == 0 {
		return fmt.Errorf("automaton has no states")
	}
	if err := d.Alphabet.Validate(); err != nil {
		return err
	}
	if d.Start < 0 || d.Start >= n {
		return fmt.Errorf("start state %d out of range", d.Start)
	}
	if len(d.Accepting) != n || len(d.Labels) != n {
		return fmt.Errorf("state attribute lengths disagree with %d states", n)
	}
	for q, outs := range d.Delta {
		if len(outs) != len(d.Alphabet) {
			return fmt.Errorf("state %d has %d transitions, want %d", q, len(outs), len(d.Alphabet))
		}
		for sym, next := range outs {
			if next < 0 || next >= n {
				return fmt.Errorf("transition %d --%q--> %d out of range", q, d.Alphabet[sym], next)
			}
		}
	}
	reached := d.reachable()
	for q := 0; q < n; q++ {
		if !reached[q] {
			return fmt.Errorf("state %d is unreachable from the start state", q)
		}
	}
	return nil
}

// reachable returns the set of states reachable from Start
func (d *DFA) reachable() []bool {
	seen := make([]bool, len(d.Delta))
	stack := []int{d.Start}
	seen[d.Start] = true
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range d.Delta[q] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// StateLabel returns the display label of a state. The empty access string
// (the initial state of a learned automaton) renders as λ.
func (d *DFA) StateLabel(q int) string {
	if d.Labels[q] == "" {
		return "λ"
	}
	return d.Labels[q]
}

// String renders the automaton as a readable description: alphabet, initial
// state, accepting set, states, and the full transition table.
func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA over %q with %d states\n", string(d.Alphabet), d.NumStates())
	fmt.Fprintf(&b, "  initial: %d (%s)\n", d.Start, d.StateLabel(d.Start))
	var finals []string
	for q, acc := range d.Accepting {
		if acc {
			finals = append(finals, fmt.Sprintf("%d (%s)", q, d.StateLabel(q)))
		}
	}
	fmt.Fprintf(&b, "  accepting: {%s}\n", strings.Join(finals, ", "))
	for q := range d.Delta {
		for sym, next := range d.Delta[q] {
			fmt.Fprintf(&b, "  %d (%s) --%c--> %d (%s)\n",
				q, d.StateLabel(q), d.Alphabet[sym], next, d.StateLabel(next))
		}
	}
	return b.String()
}
