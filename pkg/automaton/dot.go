/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT rendering for learned automata. Emits a left-to-right
digraph with a plain start marker, doublecircle accepting states, and one edge
per state pair carrying the comma-joined symbols that take it.
*/

package automaton

import (
	"fmt"
	"strings"
)

// DOT renders the automaton as a Graphviz digraph. The output is plain text;
// rendering to an image is left to external tooling.
func (d *DFA) DOT() string {
	var sb strings.Builder

	sb.WriteString("digraph DFA {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("  edge [arrowhead=vee];\n")
	sb.WriteString("\n")

	sb.WriteString("  start [shape=plain];\n")
	fmt.Fprintf(&sb, "  start -> q%d;\n", d.Start)
	sb.WriteString("\n")

	for q := 0; q < d.NumStates(); q++ {
		shape := ""
		if d.Accepting[q] {
			shape = ", shape=doublecircle"
		}
		fmt.Fprintf(&sb, "  q%d [label=\"%s\"%s];\n", q, d.StateLabel(q), shape)
	}
	sb.WriteString("\n")

	for q := 0; q < d.NumStates(); q++ {
		// merge parallel edges into one label per target state
		labels := make(map[int][]string)
		order := []int{}
		for sym, next := range d.Delta[q] {
			if _, seen := labels[next]; !seen {
				order = append(order, next)
			}
			labels[next] = append(labels[next], string(d.Alphabet[sym]))
		}
		for _, next := range order {
			fmt.Fprintf(&sb, "  q%d -> q%d [label=\"%s\"];\n", q, next, strings.Join(labels[next], ", "))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
