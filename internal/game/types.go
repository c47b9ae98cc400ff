// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Difficulty:  which word pool a round draws from (easy/medium/hard).
//   - Outcome:     round state (in_progress/won/lost).
//   - GuessResult: per-guess evaluation (hit/miss/ignored).
//   - Snapshot:    read-only view of the current round + session handed to callers.

package game

import (
	"strings"
	"time"
)

const (
	// MaxWrong is the number of misses that loses a round.
	MaxWrong = 6
	// WinReward is added to the session score when a round is won.
	WinReward = 10
	// Placeholder stands in for an unguessed letter in the masked word.
	Placeholder = "_"
)

// Difficulty selects the word pool for a round.
type Difficulty string

const (
	// Easy draws from the shortest, most common words.
	Easy Difficulty = "easy"
	// Medium is the default pool.
	Medium Difficulty = "medium"
	// Hard draws from longer, less common words.
	Hard Difficulty = "hard"
)

// DefaultDifficulty is the difficulty of a fresh session.
const DefaultDifficulty = Medium

// Difficulties lists the known difficulties in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, true
	case Medium:
		return Medium, true
	case Hard:
		return Hard, true
	}
	return "", false
}

// Outcome is the state of a round.
//   - "in_progress": guesses are still accepted.
//   - "won":         every letter of the secret word has been guessed.
//   - "lost":        MaxWrong misses were made.
type Outcome string

const (
	// InProgress means the round still accepts guesses.
	InProgress Outcome = "in_progress"
	// Won means every letter of the word was revealed.
	Won Outcome = "won"
	// Lost means MaxWrong misses were made.
	Lost Outcome = "lost"
)

// Terminal reports whether no further guesses will be accepted.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// GuessResult is the evaluation of a single letter guess.
//   - "hit":     the letter occurs in the secret word.
//   - "miss":    it does not; the wrong count went up.
//   - "ignored": repeated letter, non-letter, or round already over. State unchanged.
type GuessResult string

const (
	// Hit means the letter occurs in the word.
	Hit GuessResult = "hit"
	// Miss means it does not; the wrong count went up by one.
	Miss GuessResult = "miss"
	// Ignored means the guess changed nothing.
	Ignored GuessResult = "ignored"
)

// Snapshot is an immutable view of the engine after an operation.
// Word is only filled in once the round is over.
type Snapshot struct {
	RoundID           string     `json:"roundId"`
	Difficulty        Difficulty `json:"difficulty"`
	Masked            string     `json:"masked"`
	Guessed           []string   `json:"guessed"`
	WrongCount        int        `json:"wrongCount"`
	RemainingAttempts int        `json:"remainingAttempts"`
	Outcome           Outcome    `json:"outcome"`
	Score             int        `json:"score"`
	Word              string     `json:"word,omitempty"`
	StartedAt         time.Time  `json:"startedAt"`
}
