// internal/game/round.go
//
// Round: one playthrough from word selection to won/lost.
//
// A Round is a value. Guess never mutates its receiver; it returns the next
// Round, so callers can hold on to earlier states (tests, undo, replay).
//
// State transitions (evaluated on every accepted guess):
//   - Hit  → if every letter of the word is now guessed → won.
//   - Miss → wrong count +1; if it reaches MaxWrong → lost.
//   - Terminal rounds, repeated letters and non-letters → ignored, no change.

package game

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Round is the state of a single word.
type Round struct {
	ID         string
	Difficulty Difficulty
	Word       string
	StartedAt  time.Time

	guessed [26]bool // indexed by letter - 'A'
	order   []byte   // guessed letters in the order they were played
	wrong   int
	outcome Outcome
}

// NewRound starts an in-progress round for word. word must already be a
// valid uppercase pool word.
func NewRound(d Difficulty, word string, startedAt time.Time) Round {
	return Round{
		ID:         uuid.NewString(),
		Difficulty: d,
		Word:       word,
		StartedAt:  startedAt,
		outcome:    InProgress,
	}
}

// Guess applies letter and returns the next round and the evaluation.
// Lowercase letters are accepted and uppercased.
func (r Round) Guess(letter rune) (Round, GuessResult) {
	l, ok := normalizeLetter(letter)
	if !ok || r.outcome.Terminal() || r.guessed[l-'A'] {
		return r, Ignored
	}

	next := r
	next.order = append(r.order[:len(r.order):len(r.order)], l)
	next.guessed[l-'A'] = true

	if strings.IndexByte(r.Word, l) >= 0 {
		if next.covered() {
			next.outcome = Won
		}
		return next, Hit
	}

	next.wrong++
	if next.wrong >= MaxWrong {
		next.outcome = Lost
	}
	return next, Miss
}

// Outcome reports the round state.
func (r Round) Outcome() Outcome { return r.outcome }

// WrongCount is the number of guessed letters not in the word.
func (r Round) WrongCount() int { return r.wrong }

// RemainingAttempts is MaxWrong - WrongCount.
func (r Round) RemainingAttempts() int { return MaxWrong - r.wrong }

// Guessed returns the guessed letters in play order.
func (r Round) Guessed() []string {
	out := make([]string, len(r.order))
	for i, l := range r.order {
		out[i] = string(l)
	}
	return out
}

// Masked returns one entry per word position: the letter if guessed,
// Placeholder otherwise.
func (r Round) Masked() []string {
	out := make([]string, len(r.Word))
	for i := 0; i < len(r.Word); i++ {
		c := r.Word[i]
		if r.guessed[c-'A'] {
			out[i] = string(c)
		} else {
			out[i] = Placeholder
		}
	}
	return out
}

// MaskedWord joins Masked with single spaces, e.g. "C _ T".
func (r Round) MaskedWord() string {
	return strings.Join(r.Masked(), " ")
}

// covered reports whether every letter of the word has been guessed.
func (r Round) covered() bool {
	for i := 0; i < len(r.Word); i++ {
		if !r.guessed[r.Word[i]-'A'] {
			return false
		}
	}
	return true
}

// normalizeLetter uppercases an ASCII letter; anything else is rejected.
func normalizeLetter(letter rune) (byte, bool) {
	if letter > unicode.MaxASCII {
		return 0, false
	}
	l := unicode.ToUpper(letter)
	if l < 'A' || l > 'Z' {
		return 0, false
	}
	return byte(l), true
}
