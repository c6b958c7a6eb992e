/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and configuration types for the Akaylee Learner.
Defines the membership oracle contract, learner configuration, session
statistics, and the target-language interface used across all packages to
break import cycles and enable proper modular design.
*/

package interfaces

import (
	"fmt"
	"time"
)

// Oracle is a membership oracle: a total predicate over strings built from
// the session alphabet. It must be deterministic and must not mutate state
// the learner depends on; a nondeterministic oracle is a user error and
// leaves the learner's behavior undefined. Any returned error aborts the
// session and is propagated to the caller unchanged.
type Oracle func(word string) (bool, error)

// Target is a named membership oracle with its own alphabet. Built-in
// targets back the CLI, the demo, and the end-to-end tests.
type Target interface {
	// Name returns the registry name of this target
	Name() string

	// Description returns a human-readable description of the language
	Description() string

	// Alphabet returns the alphabet the language is defined over
	Alphabet() Alphabet

	// Membership answers whether a word belongs to the language
	Membership(word string) (bool, error)
}

// DefaultMaxCESearches is the default budget of membership checks spent per
// simulated equivalence query.
const DefaultMaxCESearches = 100000

// LearnerConfig contains all configuration parameters for a learning session
type LearnerConfig struct {
	// Alphabet is the ordered symbol set the target language is defined over
	Alphabet Alphabet `json:"alphabet"`

	// MaxCELen bounds the length of counterexamples searched for. Zero
	// means: derive the bound from MaxCESearches. When both are given the
	// shorter search dominates.
	MaxCELen int `json:"max_ce_len"`

	// MaxCESearches bounds the number of membership checks per equivalence
	// query simulation. Zero means DefaultMaxCESearches.
	MaxCESearches int `json:"max_ce_searches"`
}

// Validate checks the LearnerConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LearnerConfig) Validate() error {
	if err := c.Alphabet.Validate(); err != nil {
		return err
	}
	if c.MaxCESearches < 0 {
		return fmt.Errorf("max_ce_searches must be positive, got %d", c.MaxCESearches)
	}
	if c.MaxCELen != 0 && c.MaxCELen < 2 {
		return fmt.Errorf("max_ce_len must be at least 2, got %d", c.MaxCELen)
	}
	return nil
}

// LearnStats tracks the work performed by a single learning session
type LearnStats struct {
	SessionID         string        `json:"session_id"`         // Unique identifier for the session
	StartTime         time.Time     `json:"start_time"`         // When learning started
	Duration          time.Duration `json:"duration"`           // Total wall-clock time
	MembershipQueries int           `json:"membership_queries"` // Unique oracle invocations (memoized)
	CachedQueries     int           `json:"cached_queries"`     // Queries answered from the adapter cache
	SearchChecks      int           `json:"search_checks"`      // Membership checks spent on counterexample search
	TableRows         int           `json:"table_rows"`         // Access strings in S at termination
	TableCells        int           `json:"table_cells"`        // Filled cells over (S ∪ S·Σ) × E
	Experiments       int           `json:"experiments"`        // Distinguishing suffixes in E
	RowsPromoted      int           `json:"rows_promoted"`      // Closure repairs performed
	ExperimentsAdded  int           `json:"experiments_added"`  // Consistency repairs performed
	Counterexamples   int           `json:"counterexamples"`    // Counterexamples absorbed
	Hypotheses        int           `json:"hypotheses"`         // Hypothesis DFAs extracted
	States            int           `json:"states"`             // States of the returned DFA
}
