/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: targets.go
Description: Built-in target languages for the Akaylee Learner. Provides a
registry of named membership oracles used by the CLI, the demo, and the
end-to-end tests, plus a regexp-backed target for ad-hoc languages.
*/

package oracle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
)

// funcTarget is a target language backed by a plain predicate
type funcTarget struct {
	name        string
	description string
	alphabet    interfaces.Alphabet
	predicate   func(word string) bool
}

func (t *funcTarget) Name() string { return t.name }

func (t *funcTarget) Description() string { return t.description }

func (t *funcTarget) Alphabet() interfaces.Alphabet { return t.alphabet }

func (t *funcTarget) Membership(w string) (bool, error) { return t.predicate(w), nil }

// builtinTargets is the registry of named target languages, in listing order
var builtinTargets = []*funcTarget{
	{
		name:        "even-ab",
		description: "Words over {a,b} with an even number of a's and an even number of b's",
		alphabet:    interfaces.Alphabet("ab"),
		predicate: func(w string) bool {
			return strings.Count(w, "a")%2 == 0 && strings.Count(w, "b")%2 == 0
		},
	},
	{
		name:        "ends-ab",
		description: "Words over {a,b} that end with the suffix \"ab\"",
		alphabet:    interfaces.Alphabet("ab"),
		predicate: func(w string) bool {
			return strings.HasSuffix(w, "ab")
		},
	},
	{
		name:        "third-last-one",
		description: "Words over {0,1} whose third symbol from the end is 1",
		alphabet:    interfaces.Alphabet("01"),
		predicate: func(w string) bool {
			r := []rune(w)
			return len(r) >= 3 && r[len(r)-3] == '1'
		},
	},
	{
		name:        "double-substring",
		description: "Words over {a,b} that contain both \"ababbaa\" and \"bbbaaa\" as substrings",
		alphabet:    interfaces.Alphabet("ab"),
		predicate: func(w string) bool {
			return strings.Contains(w, "ababbaa") && strings.Contains(w, "bbbaaa")
		},
	},
	{
		name:        "all",
		description: "The universal language over {a}: every word is accepted",
		alphabet:    interfaces.Alphabet("a"),
		predicate: func(w string) bool {
			return true
		},
	},
	{
		name:        "none",
		description: "The empty language over {a,b}: no word is accepted",
		alphabet:    interfaces.Alphabet("ab"),
		predicate: func(w string) bool {
			return false
		},
	},
}

// NewTarget returns the built-in target language registered under the given
// name, or an error naming the available targets.
func NewTarget(name string) (interfaces.Target, error) {
	for _, t := range builtinTargets {
		if t.name == name {
			return t, nil
		}
	}
	names := make([]string, len(builtinTargets))
	for i, t := range builtinTargets {
		names[i] = t.name
	}
	return nil, fmt.Errorf("unknown target %q (available: %s)", name, strings.Join(names, ", "))
}

// ListTargets returns all built-in target languages in registry order
func ListTargets() []interfaces.Target {
	targets := make([]interfaces.Target, len(builtinTargets))
	for i, t := range builtinTargets {
		targets[i] = t
	}
	return targets
}

// NewRegexpTarget builds a target language from an anchored regular
// expression over the given alphabet. The pattern is implicitly wrapped in
// ^(?:...)$ so membership means the whole word matches.
func NewRegexpTarget(alphabet interfaces.Alphabet, pattern string) (interfaces.Target, error) {
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid target pattern: %w", err)
	}
	return &funcTarget{
		name:        "regexp:" + pattern,
		description: fmt.Sprintf("Words over %q fully matching /%s/", string(alphabet), pattern),
		alphabet:    alphabet,
		predicate:   re.MatchString,
	}, nil
}
