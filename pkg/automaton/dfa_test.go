/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dfa_test.go
Description: Tests for the DFA value, DOT rendering, Hopcroft minimization,
and the isomorphism check.
*/

package automaton_test

import (
	"strings"
	"testing"

	"github.com/kleascm/akaylee-learner/pkg/automaton"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endsAB recognizes words over {a,b} ending with "ab": state 0 = no
// progress, 1 = seen a, 2 = seen ab
func endsAB() *automaton.DFA {
	return &automaton.DFA{
		Alphabet:  interfaces.Alphabet("ab"),
		Labels:    []string{"", "a", "ab"},
		Start:     0,
		Accepting: []bool{false, false, true},
		Delta: [][]int{
			{1, 0},
			{1, 2},
			{1, 0},
		},
	}
}

func TestDFAAccepts(t *testing.T) {
	d := endsAB()
	require.NoError(t, d.Validate())

	for word, want := range map[string]bool{
		"ab": true, "aab": true, "bab": true, "abab": true,
		"": false, "a": false, "ba": false, "abb": false,
	} {
		got, err := d.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}

	_, err := d.Accepts("abc")
	assert.Error(t, err)
}

func TestDFAWalk(t *testing.T) {
	d := endsAB()
	w, err := d.Alphabet.Parse("aa")
	require.NoError(t, err)

	q := d.Walk(d.Start, w)
	assert.Equal(t, 1, q)

	// walking is incremental: continuing from q matches walking the whole word
	rest, err := d.Alphabet.Parse("b")
	require.NoError(t, err)
	full, err := d.Alphabet.Parse("aab")
	require.NoError(t, err)
	assert.Equal(t, d.Walk(d.Start, full), d.Walk(q, rest))
}

func TestDFAValidateRejectsBrokenAutomata(t *testing.T) {
	d := endsAB()
	d.Delta[1] = []int{1} // missing transition
	assert.Error(t, d.Validate())

	d = endsAB()
	d.Delta[0][0] = 7 // out of range
	assert.Error(t, d.Validate())

	d = endsAB()
	d.Delta[0] = []int{0, 0}
	d.Delta[2] = []int{2, 2} // state 1 and 2 unreachable
	assert.Error(t, d.Validate())
}

func TestDFAStringDescription(t *testing.T) {
	d := endsAB()
	desc := d.String()

	assert.Contains(t, desc, "3 states")
	assert.Contains(t, desc, "initial: 0 (λ)")
	assert.Contains(t, desc, "2 (ab)")
}

func TestDOTOutput(t *testing.T) {
	d := endsAB()
	dot := d.DOT()

	assert.True(t, strings.HasPrefix(dot, "digraph DFA {"))
	assert.Contains(t, dot, "rankdir=LR")
	assert.Contains(t, dot, "start -> q0")
	assert.Contains(t, dot, "q2 [label=\"ab\", shape=doublecircle]")
	// one edge per (source, target) pair, labelled with its symbol
	assert.Contains(t, dot, "q2 -> q0 [label=\"b\"]")
	assert.Contains(t, dot, "q1 -> q1 [label=\"a\"]")
}

func TestMinimizeCollapsesEquivalentStates(t *testing.T) {
	// ends-with-ab with a redundant duplicate of state 0
	d := &automaton.DFA{
		Alphabet:  interfaces.Alphabet("ab"),
		Labels:    []string{"", "a", "ab", "b"},
		Start:     0,
		Accepting: []bool{false, false, true, false},
		Delta: [][]int{
			{1, 3},
			{1, 2},
			{1, 3},
			{1, 3}, // behaves exactly like state 0
		},
	}
	require.NoError(t, d.Validate())

	min := automaton.Minimize(d)
	require.NoError(t, min.Validate())
	assert.Equal(t, 3, min.NumStates())

	for _, word := range []string{"", "a", "ab", "ba", "bab", "abb", "abab"} {
		want, err := d.Accepts(word)
		require.NoError(t, err)
		got, err := min.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}
}

func TestMinimizeFixpoint(t *testing.T) {
	d := endsAB()
	min := automaton.Minimize(d)
	assert.Equal(t, d.NumStates(), min.NumStates())
	assert.True(t, automaton.Isomorphic(d, min))
}

func TestIsomorphic(t *testing.T) {
	a := endsAB()
	b := endsAB()
	// rename states of b: swap 0 and 1
	b.Start = 1
	b.Accepting = []bool{false, false, true}
	b.Labels = []string{"a", "", "ab"}
	b.Delta = [][]int{
		{0, 2},
		{0, 1},
		{0, 1},
	}
	require.NoError(t, b.Validate())

	assert.True(t, automaton.Isomorphic(a, b))
	assert.True(t, automaton.Isomorphic(b, a))

	// flipping an accepting state breaks the isomorphism
	b.Accepting[1] = true
	assert.False(t, automaton.Isomorphic(a, b))
}

func TestIsomorphicDifferentSizes(t *testing.T) {
	one := &automaton.DFA{
		Alphabet:  interfaces.Alphabet("ab"),
		Labels:    []string{""},
		Start:     0,
		Accepting: []bool{true},
		Delta:     [][]int{{0, 0}},
	}
	assert.False(t, automaton.Isomorphic(one, endsAB()))
}
