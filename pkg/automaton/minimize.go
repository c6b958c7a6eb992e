/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimize.go
Description: Hopcroft partition-refinement minimization and an isomorphism
check for complete deterministic automata. Used by downstream consumers and
to verify that learned automata are minimal for their language.
*/

package automaton

// Minimize returns a minimal automaton recognizing the same language.
// Hopcroft's algorithm: refine the accepting/non-accepting partition against
// symbol preimages, keeping the smaller half on the worklist. The input must
// be total with every state reachable; learned automata satisfy both.
func Minimize(d *DFA) *DFA {
	n := d.NumStates()

	acc := make(map[int]struct{})
	non := make(map[int]struct{})
	for q := 0; q < n; q++ {
		if d.Accepting[q] {
			acc[q] = struct{}{}
		} else {
			non[q] = struct{}{}
		}
	}

	partitions := make([]map[int]struct{}, 0, 2)
	if len(acc) > 0 {
		partitions = append(partitions, acc)
	}
	if len(non) > 0 {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	for i := range work {
		work[i] = i
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		splitter := partitions[idx]

		for sym := range d.Alphabet {
			// preimage of the splitter under sym
			pre := make(map[int]struct{})
			for q := 0; q < n; q++ {
				if _, ok := splitter[d.Delta[q][sym]]; ok {
					pre[q] = struct{}{}
				}
			}

			for p := 0; p < len(partitions); p++ {
				block := partitions[p]
				inter := make(map[int]struct{})
				diff := make(map[int]struct{})
				for q := range block {
					if _, ok := pre[q]; ok {
						inter[q] = struct{}{}
					} else {
						diff[q] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[p] = inter
				partitions = append(partitions, diff)

				// a pending block keeps both halves pending; otherwise
				// only the smaller half is needed
				pending := false
				for _, w := range work {
					if w == p {
						pending = true
						break
					}
				}
				if !pending && len(inter) < len(diff) {
					work = append(work, p)
				} else {
					work = append(work, len(partitions)-1)
				}
			}
		}
	}

	// number the blocks by their smallest original state for determinism
	rep := make([]int, len(partitions))
	for i, block := range partitions {
		min := -1
		for q := range block {
			if min < 0 || q < min {
				min = q
			}
		}
		rep[i] = min
	}
	order := make([]int, len(partitions))
	for i := range order {
		order[i] = i
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if rep[order[j]] < rep[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	blockOf := make([]int, n)
	for newID, i := range order {
		for q := range partitions[i] {
			blockOf[q] = newID
		}
	}

	out := &DFA{
		Alphabet:  d.Alphabet,
		Labels:    make([]string, len(partitions)),
		Start:     blockOf[d.Start],
		Accepting: make([]bool, len(partitions)),
		Delta:     make([][]int, len(partitions)),
	}
	for newID, i := range order {
		q := rep[i]
		out.Labels[newID] = d.Labels[q]
		out.Accepting[newID] = d.Accepting[q]
		outs := make([]int, len(d.Alphabet))
		for sym := range d.Alphabet {
			outs[sym] = blockOf[d.Delta[q][sym]]
		}
		out.Delta[newID] = outs
	}
	return out
}

// Isomorphic reports whether two complete automata are identical up to state
// renaming. Both must have every state reachable from the start; the walk
// from the paired start states then visits every state of each.
func Isomorphic(a, b *DFA) bool {
	if string(a.Alphabet) != string(b.Alphabet) {
		return false
	}
	if a.NumStates() != b.NumStates() {
		return false
	}

	pair := make([]int, a.NumStates())
	for i := range pair {
		pair[i] = -1
	}
	pair[a.Start] = b.Start
	queue := []int{a.Start}

	for len(queue) > 0 {
		qa := queue[0]
		queue = queue[1:]
		qb := pair[qa]
		if a.Accepting[qa] != b.Accepting[qb] {
			return false
		}
		for sym := range a.Alphabet {
			na, nb := a.Delta[qa][sym], b.Delta[qb][sym]
			if pair[na] < 0 {
				pair[na] = nb
				queue = append(queue, na)
			} else if pair[na] != nb {
				return false
			}
		}
	}
	return true
}
