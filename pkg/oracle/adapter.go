/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: adapter.go
Description: Memoizing oracle adapter for the Akaylee Learner. Wraps a
membership oracle so that each distinct word is asked at most once per
session, and tracks query statistics for reporting.
*/

package oracle

import (
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
)

// Adapter wraps a membership oracle with memoization. Within one session a
// distinct word reaches the underlying oracle at most once; repeated queries
// are answered from the cache. The adapter is not safe for concurrent use;
// the learner is single-threaded.
type Adapter struct {
	target      interfaces.Oracle
	cache       map[string]bool
	invocations int
	hits        int
}

// NewAdapter creates an adapter for the given oracle
func NewAdapter(target interfaces.Oracle) (*Adapter, error) {
	if target == nil {
		return nil, fmt.Errorf("oracle must not be nil")
	}
	return &Adapter{
		target: target,
		cache:  make(map[string]bool),
	}, nil
}

// Query answers the membership of a word, consulting the underlying oracle
// only on the first occurrence of the word. Oracle errors are propagated
// unchanged and nothing is cached for the failed word.
func (a *Adapter) Query(word string) (bool, error) {
	if answer, ok := a.cache[word]; ok {
		a.hits++
		return answer, nil
	}
	answer, err := a.target(word)
	if err != nil {
		return false, err
	}
	a.invocations++
	a.cache[word] = answer
	return answer, nil
}

// Invocations returns the number of unique oracle invocations made
func (a *Adapter) Invocations() int {
	return a.invocations
}

// CacheHits returns the number of queries answered from the cache
func (a *Adapter) CacheHits() int {
	return a.hits
}
