/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: language.go
Description: Language primitives shared across the Akaylee Learner. Defines the
ordered alphabet, the symbol-index word representation, length-lexicographic
ordering, and the odometer enumerator used for bounded exhaustive search.
*/

package interfaces

import (
	"fmt"
	"strings"
)

// Alphabet is an ordered sequence of distinct symbols. The order is
// semantically significant: it fixes the enumeration order of words and the
// selection of canonical state representatives, which makes learning runs
// deterministic for a given oracle.
type Alphabet []rune

// ParseAlphabet builds an alphabet from a string, one symbol per rune
func ParseAlphabet(s string) (Alphabet, error) {
	a := Alphabet([]rune(s))
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks that the alphabet is non-empty and free of duplicates.
// Returns an error describing the first problem found, or nil if valid.
func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("alphabet must not be empty")
	}
	seen := make(map[rune]bool, len(a))
	for _, sym := range a {
		if seen[sym] {
			return fmt.Errorf("alphabet contains duplicate symbol %q", sym)
		}
		seen[sym] = true
	}
	return nil
}

// Index returns the position of a symbol in the alphabet, or -1 if the
// symbol does not belong to it
func (a Alphabet) Index(sym rune) int {
	for i, s := range a {
		if s == sym {
			return i
		}
	}
	return -1
}

// Render concatenates the symbols of a word into a plain string
func (a Alphabet) Render(w Word) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, sym := range w {
		b.WriteRune(a[sym])
	}
	return b.String()
}

// Parse converts a plain string into a word of symbol indices. Every rune
// must belong to the alphabet.
func (a Alphabet) Parse(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for _, r := range s {
		idx := a.Index(r)
		if idx < 0 {
			return nil, fmt.Errorf("symbol %q is not in the alphabet", r)
		}
		w = append(w, idx)
	}
	return w, nil
}

// Word is a string over an alphabet, stored as symbol indices. The empty
// word is the zero-length slice.
type Word []int

// Clone returns an independent copy of the word
func (w Word) Clone() Word {
	c := make(Word, len(w))
	copy(c, w)
	return c
}

// Concat returns a new word formed by appending v to w
func (w Word) Concat(v Word) Word {
	c := make(Word, 0, len(w)+len(v))
	c = append(c, w...)
	c = append(c, v...)
	return c
}

// Extend returns a new word formed by appending a single symbol index
func (w Word) Extend(sym int) Word {
	c := make(Word, 0, len(w)+1)
	c = append(c, w...)
	c = append(c, sym)
	return c
}

// Compare orders words by length first, then lexicographically by symbol
// index (i.e. by the caller's alphabet order, not by rune value). Returns
// -1, 0 or 1.
func (w Word) Compare(v Word) int {
	if len(w) != len(v) {
		if len(w) < len(v) {
			return -1
		}
		return 1
	}
	for i := range w {
		if w[i] != v[i] {
			if w[i] < v[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Enumerator yields every word of a fixed length over a fixed alphabet size
// in lexicographic order of symbol indices. It works as an odometer: each
// step reports the lowest digit position that changed, so a caller can
// re-evaluate a DFA incrementally from that position.
type Enumerator struct {
	digits  []int
	base    int
	started bool
	done    bool
}

// NewEnumerator creates an enumerator for words of the given length over an
// alphabet of the given size. Length zero yields the empty word once.
func NewEnumerator(length, base int) *Enumerator {
	return &Enumerator{digits: make([]int, length), base: base}
}

// Next advances the odometer. It returns the current digits (shared storage,
// valid until the next call), the lowest position whose digit changed, and
// false when the enumeration is exhausted.
func (e *Enumerator) Next() (Word, int, bool) {
	if e.done {
		return nil, 0, false
	}
	if !e.started {
		e.started = true
		return e.digits, 0, true
	}
	pos := len(e.digits) - 1
	for pos >= 0 && e.digits[pos] == e.base-1 {
		pos--
	}
	if pos < 0 {
		e.done = true
		return nil, 0, false
	}
	e.digits[pos]++
	for i := pos + 1; i < len(e.digits); i++ {
		e.digits[i] = 0
	}
	return e.digits, pos, true
}
