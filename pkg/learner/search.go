/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: search.go
Description: Bounded counterexample search for the Akaylee Learner. Simulates
an equivalence oracle by enumerating all words in length-then-lexicographic
order and comparing hypothesis acceptance against the membership oracle,
stopping at the first disagreement or when the budget runs out.
*/

package learner

import (
	"math"

	"github.com/kleascm/akaylee-learner/pkg/automaton"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
)

// unaryMaxLength caps the search length over single-symbol alphabets
const unaryMaxLength = 1024

// effectiveMaxLength derives the longest counterexample length an exhaustive
// search can cover within a budget of membership checks. Inverts the closed
// form of the geometric sum |Σ|^2 + ... + |Σ|^L ≤ N: for |Σ| = A the bound
// is log_A((N+1+A)(A-1)+1) - 1, rounded up only when the fractional part is
// at least 0.8 (rather search less than exponentially more), and never below
// 2. A unary alphabet has one word per length, so the sum is linear and the
// bound is N+1, clamped to unaryMaxLength: every unary word of length ℓ
// costs Θ(ℓ) to render and cache, and exhaustive checks beyond a thousand
// symbols add quadratic cost without distinguishing realistic hypotheses.
func effectiveMaxLength(alphabetSize, maxSearches int) int {
	if alphabetSize == 1 {
		if maxSearches+1 > unaryMaxLength {
			return unaryMaxLength
		}
		return maxSearches + 1
	}
	a := float64(alphabetSize)
	n := float64(maxSearches)
	power := (n+1+a)*(a-1) + 1
	l := math.Log(power)/math.Log(a) - 1
	floor := math.Floor(l)
	if l >= floor+0.8 {
		floor++
	}
	if floor < 2 {
		return 2
	}
	return int(floor)
}

// findCounterexample enumerates words of length 2..maxLen in
// length-then-lexicographic order and returns the first word on which the
// hypothesis and the oracle disagree. Lengths 0 and 1 are covered by the
// initial table, so no disagreement can exist there. Every membership check
// counts against the budget, cached or not; when the budget is reached the
// search reports exhaustion. The hypothesis side is evaluated incrementally:
// the odometer reports the lowest changed position, and only the state
// suffix from that position is recomputed.
func findCounterexample(d *automaton.DFA, adapter *oracle.Adapter, maxLen, budget int) (interfaces.Word, bool, int, error) {
	checks := 0
	for length := 2; length <= maxLen; length++ {
		enum := interfaces.NewEnumerator(length, len(d.Alphabet))
		states := make([]int, length+1)
		states[0] = d.Start
		for {
			digits, changed, ok := enum.Next()
			if !ok {
				break
			}
			for i := changed; i < length; i++ {
				states[i+1] = d.Delta[states[i]][digits[i]]
			}
			if checks >= budget {
				return nil, false, checks, nil
			}
			actual, err := adapter.Query(d.Alphabet.Render(digits))
			if err != nil {
				return nil, false, checks, err
			}
			checks++
			if actual != d.Accepting[states[length]] {
				return digits.Clone(), true, checks, nil
			}
		}
	}
	return nil, false, checks, nil
}
