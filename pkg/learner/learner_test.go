/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: learner_test.go
Description: End-to-end tests for the learning driver. Covers the seed
languages, determinism, soundness within the search bound, the minimality
round-trip, and the error taxonomy at session entry.
*/

package learner_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kleascm/akaylee-learner/pkg/automaton"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkAgainstOracle compares the learned automaton with its oracle on every
// word up to maxLen
func checkAgainstOracle(t *testing.T, d *automaton.DFA, target interfaces.Oracle, maxLen int) {
	t.Helper()
	for length := 0; length <= maxLen; length++ {
		enum := interfaces.NewEnumerator(length, len(d.Alphabet))
		for {
			digits, _, ok := enum.Next()
			if !ok {
				break
			}
			word := d.Alphabet.Render(digits)
			want, err := target(word)
			require.NoError(t, err)
			assert.Equal(t, want, d.AcceptsWord(digits), "word %q", word)
		}
	}
}

func TestLearnEvenCountsLanguage(t *testing.T) {
	target := func(w string) (bool, error) {
		return strings.Count(w, "a")%2 == 0 && strings.Count(w, "b")%2 == 0, nil
	}

	result, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)
	require.NoError(t, result.DFA.Validate())

	assert.Equal(t, 4, result.DFA.NumStates())
	for word, want := range map[string]bool{
		"": true, "aabb": true, "a": false, "abb": false,
	} {
		got, err := result.DFA.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}
	checkAgainstOracle(t, result.DFA, target, 7)
}

func TestLearnEndsWithABLanguage(t *testing.T) {
	target := func(w string) (bool, error) {
		return strings.HasSuffix(w, "ab"), nil
	}

	result, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)

	assert.Equal(t, 3, result.DFA.NumStates())
	for word, want := range map[string]bool{
		"ab": true, "aab": true, "bab": true,
		"": false, "a": false, "ba": false, "abb": false,
	} {
		got, err := result.DFA.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}
	checkAgainstOracle(t, result.DFA, target, 7)
}

func TestLearnThirdSymbolFromEndLanguage(t *testing.T) {
	target := func(w string) (bool, error) {
		r := []rune(w)
		return len(r) >= 3 && r[len(r)-3] == '1', nil
	}

	l, err := learner.New(&interfaces.LearnerConfig{
		Alphabet: interfaces.Alphabet("01"),
		MaxCELen: 6,
	}, target)
	require.NoError(t, err)

	result, err := l.Learn()
	require.NoError(t, err)

	assert.Equal(t, 8, result.DFA.NumStates())
	for word, want := range map[string]bool{
		"100": true, "0100": true, "1111": true,
		"": false, "0": false, "00": false, "010": false,
	} {
		got, err := result.DFA.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}
	checkAgainstOracle(t, result.DFA, target, 6)
}

func TestLearnDoubleSubstringLanguage(t *testing.T) {
	if testing.Short() {
		t.Skip("large search budget")
	}
	target := func(w string) (bool, error) {
		return strings.Contains(w, "ababbaa") && strings.Contains(w, "bbbaaa"), nil
	}

	l, err := learner.New(&interfaces.LearnerConfig{
		Alphabet:      interfaces.Alphabet("ab"),
		MaxCESearches: 1000000,
	}, target)
	require.NoError(t, err)

	result, err := l.Learn()
	require.NoError(t, err)

	for word, want := range map[string]bool{
		"ababbaabbbaaa": true,
		"bbbaaaababbaa": true,
		"ababbaa":       false,
		"bbbaaa":        false,
		"":              false,
	} {
		got, err := result.DFA.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}
}

func TestLearnUniversalUnaryLanguage(t *testing.T) {
	target := func(w string) (bool, error) { return true, nil }

	result, err := learner.Learn(interfaces.Alphabet("a"), target)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DFA.NumStates())
	assert.True(t, result.DFA.Accepting[result.DFA.Start])
	assert.Equal(t, result.DFA.Start, result.DFA.Step(result.DFA.Start, 0))
}

func TestLearnEmptyLanguage(t *testing.T) {
	target := func(w string) (bool, error) { return false, nil }

	result, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)

	assert.Equal(t, 1, result.DFA.NumStates())
	assert.False(t, result.DFA.Accepting[result.DFA.Start])
	assert.Equal(t, result.DFA.Start, result.DFA.Step(result.DFA.Start, 0))
	assert.Equal(t, result.DFA.Start, result.DFA.Step(result.DFA.Start, 1))
}

func TestLearnIsDeterministic(t *testing.T) {
	target := func(w string) (bool, error) {
		return strings.HasSuffix(w, "ab"), nil
	}

	first, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)
	second, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first.DFA.Delta, second.DFA.Delta))
	assert.True(t, reflect.DeepEqual(first.DFA.Accepting, second.DFA.Accepting))
	assert.True(t, reflect.DeepEqual(first.DFA.Labels, second.DFA.Labels))
	assert.Equal(t, first.DFA.Start, second.DFA.Start)
	assert.Equal(t, first.Stats.MembershipQueries, second.Stats.MembershipQueries)
}

func TestLearnSoundWithinSearchBound(t *testing.T) {
	// with a tight budget the result may differ from the target language,
	// but it must agree on every word up to the effective search length
	target := func(w string) (bool, error) {
		return strings.Count(w, "a")%3 == 0, nil
	}

	l, err := learner.New(&interfaces.LearnerConfig{
		Alphabet:      interfaces.Alphabet("ab"),
		MaxCESearches: 500,
	}, target)
	require.NoError(t, err)

	result, err := l.Learn()
	require.NoError(t, err)
	checkAgainstOracle(t, result.DFA, target, l.MaxCELen())
}

func TestLearnRoundTrip(t *testing.T) {
	// re-learning the learned automaton's own language yields an
	// isomorphic automaton after minimization
	target := func(w string) (bool, error) {
		return strings.HasSuffix(w, "ab"), nil
	}

	first, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)

	relearned, err := learner.Learn(interfaces.Alphabet("ab"), func(w string) (bool, error) {
		return first.DFA.Accepts(w)
	})
	require.NoError(t, err)

	a := automaton.Minimize(first.DFA)
	b := automaton.Minimize(relearned.DFA)
	assert.True(t, automaton.Isomorphic(a, b))
}

func TestLearnedAutomatonIsMinimal(t *testing.T) {
	target := func(w string) (bool, error) {
		r := []rune(w)
		return len(r) >= 2 && r[len(r)-2] == 'a', nil
	}

	result, err := learner.Learn(interfaces.Alphabet("ab"), target)
	require.NoError(t, err)

	min := automaton.Minimize(result.DFA)
	assert.Equal(t, result.DFA.NumStates(), min.NumStates())
	assert.True(t, automaton.Isomorphic(result.DFA, min))
}

func TestLearnStats(t *testing.T) {
	result, err := learner.Learn(interfaces.Alphabet("ab"), func(w string) (bool, error) {
		return strings.HasSuffix(w, "ab"), nil
	})
	require.NoError(t, err)

	stats := result.Stats
	assert.NotEmpty(t, stats.SessionID)
	assert.Equal(t, 3, stats.States)
	assert.Greater(t, stats.MembershipQueries, 0)
	assert.Greater(t, stats.SearchChecks, 0)
	assert.GreaterOrEqual(t, stats.Hypotheses, 1)
	assert.Equal(t, result.Table.NumRows(), stats.TableRows)
	assert.Equal(t, result.Table.Size(), stats.TableCells)
}

func TestLearnValidationErrors(t *testing.T) {
	ok := func(w string) (bool, error) { return false, nil }

	_, err := learner.New(&interfaces.LearnerConfig{Alphabet: interfaces.Alphabet("")}, ok)
	assert.Error(t, err)

	_, err = learner.New(&interfaces.LearnerConfig{Alphabet: interfaces.Alphabet("aa")}, ok)
	assert.Error(t, err)

	_, err = learner.New(&interfaces.LearnerConfig{Alphabet: interfaces.Alphabet("ab"), MaxCELen: 1}, ok)
	assert.Error(t, err)

	_, err = learner.New(&interfaces.LearnerConfig{Alphabet: interfaces.Alphabet("ab"), MaxCESearches: -5}, ok)
	assert.Error(t, err)

	_, err = learner.New(&interfaces.LearnerConfig{Alphabet: interfaces.Alphabet("ab")}, nil)
	assert.Error(t, err)

	_, err = learner.New(nil, ok)
	assert.Error(t, err)
}

func TestLearnPropagatesOracleError(t *testing.T) {
	errOracle := errors.New("target unavailable")
	target := func(w string) (bool, error) {
		if len(w) >= 2 {
			return false, errOracle
		}
		return strings.HasSuffix(w, "a"), nil
	}

	_, err := learner.Learn(interfaces.Alphabet("ab"), target)
	assert.ErrorIs(t, err, errOracle)
}

func TestLearnBothBudgetsShorterDominates(t *testing.T) {
	l, err := learner.New(&interfaces.LearnerConfig{
		Alphabet:      interfaces.Alphabet("ab"),
		MaxCELen:      4,
		MaxCESearches: 100000, // alone this would allow length 15
	}, func(w string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, 4, l.MaxCELen())

	// a longer explicit bound than the budget supports is clamped down
	l, err = learner.New(&interfaces.LearnerConfig{
		Alphabet:      interfaces.Alphabet("ab"),
		MaxCELen:      30,
		MaxCESearches: 12, // supports length 3
	}, func(w string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, l.MaxCELen())
}
