/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: targets.go
Description: Target listing and self-check commands for the Akaylee Learner
CLI. Lists the built-in target languages and validates a build by learning
each one and cross-checking the result against its oracle on short words.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/spf13/cobra"
)

// ListTargets lists all built-in target languages
func ListTargets(cmd *cobra.Command, args []string) {
	fmt.Println("🎯 Akaylee Learner - Built-in Target Languages")
	fmt.Println("==============================================")
	fmt.Println()

	for _, t := range oracle.ListTargets() {
		fmt.Printf("  %-18s Σ=%q\n", t.Name(), string(t.Alphabet()))
		fmt.Printf("                     %s\n\n", t.Description())
	}

	fmt.Println("Ad-hoc targets: akaylee-learner learn --regex '<pattern>' --alphabet <symbols>")
}

// RunCheck learns every built-in target and verifies the result against its
// oracle on all words up to a fixed length
func RunCheck(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}

	fmt.Println("🔍 Akaylee Learner - Self-Check")
	fmt.Println("===============================")
	fmt.Println()

	const verifyLen = 8
	failures := 0
	for _, target := range oracle.ListTargets() {
		result, err := learner.LearnTarget(target, 0, 0)
		if err != nil {
			fmt.Printf("  ❌ %-18s learning failed: %v\n", target.Name(), err)
			failures++
			continue
		}
		if mismatch, err := crossCheck(result, target, verifyLen); err != nil {
			return err
		} else if mismatch != "" {
			fmt.Printf("  ❌ %-18s disagrees with oracle on %q\n", target.Name(), mismatch)
			failures++
			continue
		}
		fmt.Printf("  ✅ %-18s %d states, %d queries, %s\n",
			target.Name(), result.Stats.States,
			result.Stats.MembershipQueries, result.Stats.Duration)
	}

	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("self-check failed for %d target(s)", failures)
	}
	fmt.Println("All targets learned and verified.")
	return nil
}

// crossCheck compares the learned automaton against the oracle on every word
// up to maxLen, returning the first disagreeing word
func crossCheck(result *learner.Result, target interfaces.Target, maxLen int) (string, error) {
	alphabet := target.Alphabet()
	for length := 0; length <= maxLen; length++ {
		enum := interfaces.NewEnumerator(length, len(alphabet))
		for {
			digits, _, ok := enum.Next()
			if !ok {
				break
			}
			word := alphabet.Render(digits)
			want, err := target.Membership(word)
			if err != nil {
				return "", err
			}
			if result.DFA.AcceptsWord(digits) != want {
				return word, nil
			}
		}
	}
	return "", nil
}
