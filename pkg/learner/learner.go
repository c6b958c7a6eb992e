/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: learner.go
Description: Learning driver for the Akaylee Learner. Implements Angluin's L*
refinement loop over the observation table: restore closedness, restore
consistency, extract a hypothesis automaton, search for a counterexample
within budget, absorb it, and repeat until the search comes back empty.
*/

package learner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-learner/pkg/automaton"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/logging"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
)

// Result is the outcome of a learning session: the learned automaton, the
// final observation table for diagnostic use, and session statistics.
type Result struct {
	DFA   *automaton.DFA
	Table *Table
	Stats interfaces.LearnStats
}

// Learner owns all state of one learning session: the observation table, the
// memoizing adapter, and the search budgets. Sessions are single-threaded
// and stateless across calls; each Learn starts from a fresh table.
type Learner struct {
	config      *interfaces.LearnerConfig
	target      interfaces.Oracle
	logger      *logging.Logger
	maxLen      int
	maxSearches int
}

// New validates the configuration and creates a learner for the given
// membership oracle. Invalid alphabets and budgets are reported here, before
// any oracle call is made.
func New(config *interfaces.LearnerConfig, target interfaces.Oracle) (*Learner, error) {
	if config == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid learner config: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("membership oracle must not be nil")
	}

	maxSearches := config.MaxCESearches
	if maxSearches == 0 {
		maxSearches = interfaces.DefaultMaxCESearches
	}
	maxLen := effectiveMaxLength(len(config.Alphabet), maxSearches)
	if config.MaxCELen != 0 && config.MaxCELen < maxLen {
		// the shorter of the two budgets dominates
		maxLen = config.MaxCELen
	}

	return &Learner{
		config:      config,
		target:      target,
		maxLen:      maxLen,
		maxSearches: maxSearches,
	}, nil
}

// SetLogger attaches a logger to the session. A nil logger keeps the
// learner silent.
func (l *Learner) SetLogger(logger *logging.Logger) {
	l.logger = logger
}

// MaxCELen returns the effective counterexample length bound of this session
func (l *Learner) MaxCELen() int {
	return l.maxLen
}

// Learn runs the L* refinement loop to completion and returns the learned
// automaton. Termination is guaranteed: every absorbed counterexample grows
// S, every consistency repair grows E, both are finite for a regular target,
// and the bounded search ends each equivalence simulation. Oracle errors
// abort the session and propagate unchanged; no partial automaton is
// returned in that case.
func (l *Learner) Learn() (*Result, error) {
	stats := interfaces.LearnStats{
		SessionID: uuid.New().String(),
		StartTime: time.Now(),
	}
	if l.logger != nil {
		l.logger.LogSessionStart(stats.SessionID, string(l.config.Alphabet), l.maxLen, l.maxSearches)
	}

	adapter, err := oracle.NewAdapter(l.target)
	if err != nil {
		return nil, err
	}
	table, err := NewTable(l.config.Alphabet, adapter)
	if err != nil {
		return nil, err
	}

	for {
		// refine until the table is closed and consistent at the same time
		for {
			for {
				closed, witness := table.IsClosed()
				if closed {
					break
				}
				if err := table.Close(witness); err != nil {
					return nil, err
				}
				stats.RowsPromoted++
				if l.logger != nil {
					l.logger.LogRefinement(stats.SessionID, "close", l.config.Alphabet.Render(witness))
				}
			}
			consistent, exp := table.IsConsistent()
			if consistent {
				break
			}
			if err := table.AddExperiment(exp); err != nil {
				return nil, err
			}
			stats.ExperimentsAdded++
			if l.logger != nil {
				l.logger.LogRefinement(stats.SessionID, "experiment", l.config.Alphabet.Render(exp))
			}
		}

		hypothesis, err := table.ToDFA()
		if err != nil {
			return nil, fmt.Errorf("internal invariant violation: %w", err)
		}
		stats.Hypotheses++
		if l.logger != nil {
			l.logger.LogHypothesis(stats.SessionID, hypothesis.NumStates(), table.NumRows(), table.NumExperiments())
		}

		ce, found, checks, err := findCounterexample(hypothesis, adapter, l.maxLen, l.maxSearches)
		stats.SearchChecks += checks
		if err != nil {
			return nil, err
		}
		if !found {
			if err := hypothesis.Validate(); err != nil {
				return nil, fmt.Errorf("internal invariant violation: %w", err)
			}
			stats.Duration = time.Since(stats.StartTime)
			stats.MembershipQueries = adapter.Invocations()
			stats.CachedQueries = adapter.CacheHits()
			stats.TableRows = table.NumRows()
			stats.TableCells = table.Size()
			stats.Experiments = table.NumExperiments()
			stats.States = hypothesis.NumStates()
			if l.logger != nil {
				l.logger.LogSessionEnd(&stats)
			}
			return &Result{DFA: hypothesis, Table: table, Stats: stats}, nil
		}

		stats.Counterexamples++
		if l.logger != nil {
			l.logger.LogCounterexample(stats.SessionID, l.config.Alphabet.Render(ce), len(ce))
		}
		if err := table.Absorb(ce); err != nil {
			return nil, err
		}
	}
}

// Learn is a convenience wrapper: learn the language of a membership oracle
// over the given alphabet with default budgets.
func Learn(alphabet interfaces.Alphabet, target interfaces.Oracle) (*Result, error) {
	l, err := New(&interfaces.LearnerConfig{Alphabet: alphabet}, target)
	if err != nil {
		return nil, err
	}
	return l.Learn()
}

// LearnTarget learns a built-in or regexp target language with the given
// budgets (zero values mean defaults).
func LearnTarget(target interfaces.Target, maxCELen, maxCESearches int) (*Result, error) {
	l, err := New(&interfaces.LearnerConfig{
		Alphabet:      target.Alphabet(),
		MaxCELen:      maxCELen,
		MaxCESearches: maxCESearches,
	}, target.Membership)
	if err != nil {
		return nil, err
	}
	return l.Learn()
}
