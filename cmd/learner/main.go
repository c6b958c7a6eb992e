/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Learner. Provides
command-line options, configuration management, and a clean user interface
for running automaton-learning sessions against built-in or regexp targets.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-learner/cmd/learner/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "akaylee-learner",
		Short: "Akaylee Learner - Active automaton learning engine",
		Long: `Akaylee Learner infers the minimal deterministic finite automaton of an
unknown regular language from membership queries alone, using Angluin's L*
algorithm with a budget-bounded exhaustive search standing in for the
equivalence oracle. Built as a companion to the Akaylee Fuzzer for modeling
black-box target behavior.`,
		Version: "1.0.0",
	}

	// Persistent flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Log output directory (empty: console only)")
	rootCmd.PersistentFlags().Int("log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Learn command
	learnCmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn the automaton of a target language",
		Long: `Run a learning session against a built-in target language or an ad-hoc
regular expression, and print the learned automaton. Optionally write the
automaton as Graphviz DOT or as a JSON result file.`,
		RunE: commands.RunLearn,
	}
	learnCmd.Flags().String("target", "", "Built-in target language name (see 'targets')")
	learnCmd.Flags().String("regex", "", "Regular expression target (requires --alphabet)")
	learnCmd.Flags().String("alphabet", "", "Alphabet for --regex, one symbol per character")
	learnCmd.Flags().Int("max-ce-len", 0, "Maximum counterexample length (0 = derive from budget)")
	learnCmd.Flags().Int("max-ce-searches", 0, "Membership checks per equivalence simulation (0 = 100000)")
	learnCmd.Flags().String("dot", "", "Write the learned automaton as Graphviz DOT to this file")
	learnCmd.Flags().Bool("save-result", false, "Write a JSON result file under ./results")
	viper.BindPFlag("learn.target", learnCmd.Flags().Lookup("target"))
	viper.BindPFlag("learn.regex", learnCmd.Flags().Lookup("regex"))
	viper.BindPFlag("learn.alphabet", learnCmd.Flags().Lookup("alphabet"))
	viper.BindPFlag("learn.max_ce_len", learnCmd.Flags().Lookup("max-ce-len"))
	viper.BindPFlag("learn.max_ce_searches", learnCmd.Flags().Lookup("max-ce-searches"))
	viper.BindPFlag("learn.dot", learnCmd.Flags().Lookup("dot"))
	viper.BindPFlag("learn.save_result", learnCmd.Flags().Lookup("save-result"))

	// Targets command
	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "List the built-in target languages",
		Run:   commands.ListTargets,
	}

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run the built-in targets as a self-check",
		Long: `Learn every built-in target language and verify the learned automata
against their oracles on all short words. Useful for validating a build.`,
		RunE: commands.RunCheck,
	}

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
