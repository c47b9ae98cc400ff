// internal/game/pool.go
//
// WordPool: the fixed difficulty → words mapping a round draws from.
//
// Rules enforced by NewWordPool:
//   - Every known difficulty present in the input must have at least one word.
//   - Keys that normalize to the same difficulty ("easy", "EASY") are rejected.
//   - Words are trimmed and uppercased, then must be A–Z only and ≥ 3 letters.
//   - The pool copies its input; nothing outside can mutate it afterwards.

package game

import (
	"fmt"
	"sort"
	"strings"
)

// MinWordLen is the shortest secret word allowed.
const MinWordLen = 3

// WordPool maps each difficulty to a non-empty ordered word list.
type WordPool struct {
	lists map[Difficulty][]string
}

// NewWordPool validates and copies lists into a WordPool.
func NewWordPool(lists map[Difficulty][]string) (WordPool, error) {
	if len(lists) == 0 {
		return WordPool{}, &ConfigError{Reason: "word pool is empty"}
	}
	out := make(map[Difficulty][]string, len(lists))
	for key, words := range lists {
		d, ok := ParseDifficulty(string(key))
		if !ok {
			return WordPool{}, &ConfigError{Difficulty: key, Reason: "unknown difficulty"}
		}
		if _, dup := out[d]; dup {
			return WordPool{}, &ConfigError{Difficulty: d, Reason: "duplicate difficulty"}
		}
		if len(words) == 0 {
			return WordPool{}, &ConfigError{Difficulty: d, Reason: "no words"}
		}
		norm := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToUpper(strings.TrimSpace(w))
			if err := validWord(w); err != nil {
				return WordPool{}, &ConfigError{Difficulty: d, Reason: err.Error()}
			}
			norm = append(norm, w)
		}
		out[d] = norm
	}
	return WordPool{lists: out}, nil
}

// Words returns a copy of the list for d, or a ConfigError if there is none.
func (p WordPool) Words(d Difficulty) ([]string, error) {
	list, ok := p.lists[d]
	if !ok || len(list) == 0 {
		return nil, &ConfigError{Difficulty: d, Reason: "no word pool"}
	}
	return append([]string(nil), list...), nil
}

// Has reports whether d has a word list.
func (p WordPool) Has(d Difficulty) bool {
	return len(p.lists[d]) > 0
}

// Contains reports whether word is in the list for d.
func (p WordPool) Contains(d Difficulty, word string) bool {
	for _, w := range p.lists[d] {
		if w == word {
			return true
		}
	}
	return false
}

// Stats returns the number of words per difficulty.
func (p WordPool) Stats() map[Difficulty]int {
	out := make(map[Difficulty]int, len(p.lists))
	for d, l := range p.lists {
		out[d] = len(l)
	}
	return out
}

// Difficulties returns the configured difficulties, sorted in display order.
func (p WordPool) Difficulties() []Difficulty {
	rank := map[Difficulty]int{Easy: 0, Medium: 1, Hard: 2}
	out := make([]Difficulty, 0, len(p.lists))
	for d := range p.lists {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// validWord checks the A–Z / minimum length rule on an already-uppercased word.
func validWord(w string) error {
	if len(w) < MinWordLen {
		return fmt.Errorf("word %q shorter than %d letters", w, MinWordLen)
	}
	if !isUpperAlpha(w) {
		return fmt.Errorf("word %q has characters outside A-Z", w)
	}
	return nil
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
