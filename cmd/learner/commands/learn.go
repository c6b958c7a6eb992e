/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: learn.go
Description: Learn command for the Akaylee Learner CLI. Resolves the target
language, runs the learning session, prints the learned automaton, and
optionally writes DOT and JSON artifacts.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/kleascm/akaylee-learner/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LearnResultFile is the JSON shape written by --save-result
type LearnResultFile struct {
	Target string                `json:"target"`
	Stats  interfaces.LearnStats `json:"stats"`
	DOT    string                `json:"dot"`
}

// resolveTarget picks the target language from the learn flags
func resolveTarget() (interfaces.Target, error) {
	name := viper.GetString("learn.target")
	pattern := viper.GetString("learn.regex")

	switch {
	case name != "" && pattern != "":
		return nil, fmt.Errorf("--target and --regex are mutually exclusive")
	case name != "":
		return oracle.NewTarget(name)
	case pattern != "":
		alphabet, err := interfaces.ParseAlphabet(viper.GetString("learn.alphabet"))
		if err != nil {
			return nil, fmt.Errorf("--regex requires a valid --alphabet: %w", err)
		}
		return oracle.NewRegexpTarget(alphabet, pattern)
	default:
		return nil, fmt.Errorf("either --target or --regex is required")
	}
}

// RunLearn executes a learning session
func RunLearn(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	target, err := resolveTarget()
	if err != nil {
		return err
	}

	config := &interfaces.LearnerConfig{
		Alphabet:      target.Alphabet(),
		MaxCELen:      viper.GetInt("learn.max_ce_len"),
		MaxCESearches: viper.GetInt("learn.max_ce_searches"),
	}
	l, err := learner.New(config, target.Membership)
	if err != nil {
		return err
	}
	l.SetLogger(logger)

	fmt.Printf("🧠 Akaylee Learner - learning %s\n", target.Name())
	fmt.Printf("   %s\n\n", target.Description())

	result, err := l.Learn()
	if err != nil {
		return fmt.Errorf("learning failed: %w", err)
	}

	fmt.Println(result.DFA.String())
	fmt.Printf("📊 %d states | %d membership queries | %d search checks | %d counterexamples | %s\n",
		result.Stats.States, result.Stats.MembershipQueries,
		result.Stats.SearchChecks, result.Stats.Counterexamples,
		result.Stats.Duration)

	if dotPath := viper.GetString("learn.dot"); dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(result.DFA.DOT()), 0644); err != nil {
			return fmt.Errorf("failed to write DOT file: %w", err)
		}
		fmt.Printf("📈 DOT written to %s\n", dotPath)
	}

	if viper.GetBool("learn.save_result") {
		path, err := utils.WriteResult("learn", cmd.Root().Version, &LearnResultFile{
			Target: target.Name(),
			Stats:  result.Stats,
			DOT:    result.DFA.DOT(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("💾 Result written to %s\n", path)
	}

	return nil
}
