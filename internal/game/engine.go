// internal/game/engine.go
//
// Core game engine for a single Hangman player.
// Responsibilities:
//   - Start rounds by picking a word uniformly from the difficulty's pool.
//   - Apply letter guesses to the current round.
//   - Award WinReward exactly once, on the transition to won.
//   - Answer queries (masked word, wrong count, remaining attempts, outcome, score).
//
// Notes:
//   - The engine is synchronous and not safe for concurrent use; callers that
//     share one must serialize access (see store.Entry.Do).
//   - Word selection goes through a Picker so tests can choose the word.
//   - Repeated letters, guesses after the round ended and guesses before any
//     round exist are ignored, never errors.
package game

import (
	"fmt"
	"time"
)

// Engine owns a word pool, the current round and the player session.
type Engine struct {
	pool    WordPool
	picker  Picker
	session *Session
	round   *Round
	now     func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithDefaultDifficulty sets the difficulty a new (or reset) session starts on.
func WithDefaultDifficulty(d Difficulty) Option {
	return func(e *Engine) { e.session = NewSession(d) }
}

// WithClock replaces time.Now for round start times.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine constructs an engine over pool. A nil picker uses CryptoPicker.
func NewEngine(pool WordPool, picker Picker, opts ...Option) *Engine {
	if picker == nil {
		picker = CryptoPicker{}
	}
	e := &Engine{
		pool:    pool,
		picker:  picker,
		session: NewSession(DefaultDifficulty),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartRound replaces the current round with a fresh one on difficulty d and
// makes d the session difficulty. Consecutive rounds may draw the same word.
// It panics if the Picker returns an index outside [0, n).
func (e *Engine) StartRound(d Difficulty) (Snapshot, error) {
	words, err := e.pool.Words(d)
	if err != nil {
		return e.Snapshot(), err
	}
	i := e.picker.Pick(len(words))
	if i < 0 || i >= len(words) {
		panic(fmt.Sprintf("game: picker returned %d for %d words", i, len(words)))
	}
	r := NewRound(d, words[i], e.now().UTC())
	e.round = &r
	e.session.difficulty = d
	return e.Snapshot(), nil
}

// Restart starts a new round on the session's current difficulty.
func (e *Engine) Restart() (Snapshot, error) {
	return e.StartRound(e.session.difficulty)
}

// Guess applies letter to the current round. Score is credited here, under
// the same call that moves the round to won, so it happens at most once.
func (e *Engine) Guess(letter rune) (Snapshot, GuessResult) {
	if e.round == nil {
		return e.Snapshot(), Ignored
	}
	prev := e.round.Outcome()
	next, res := e.round.Guess(letter)
	if res == Ignored {
		return e.Snapshot(), Ignored
	}
	e.round = &next
	if prev != Won && next.Outcome() == Won {
		e.session.reward()
	}
	return e.Snapshot(), res
}

// ResetSession zeroes the score, restores the session's starting difficulty
// and drops the current round.
func (e *Engine) ResetSession() Snapshot {
	e.session.Reset()
	e.round = nil
	return e.Snapshot()
}

// Round returns a copy of the current round and whether one exists.
func (e *Engine) Round() (Round, bool) {
	if e.round == nil {
		return Round{}, false
	}
	return *e.round, true
}

// MaskedWord is the current round's masked word ("" when there is no round).
func (e *Engine) MaskedWord() string {
	if e.round == nil {
		return ""
	}
	return e.round.MaskedWord()
}

// WrongCount is the current round's number of misses.
func (e *Engine) WrongCount() int {
	if e.round == nil {
		return 0
	}
	return e.round.WrongCount()
}

// RemainingAttempts is MaxWrong - WrongCount.
func (e *Engine) RemainingAttempts() int { return MaxWrong - e.WrongCount() }

// Outcome is the current round's outcome. With no round it reports
// InProgress, matching a round that has not accepted any guess yet.
func (e *Engine) Outcome() Outcome {
	if e.round == nil {
		return InProgress
	}
	return e.round.Outcome()
}

// Score is the session's cumulative score.
func (e *Engine) Score() int { return e.session.Score() }

// Difficulty is the session's active difficulty.
func (e *Engine) Difficulty() Difficulty { return e.session.Difficulty() }

// Snapshot captures the current round and session. The secret word is only
// included once the round is over.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Difficulty:        e.session.Difficulty(),
		Guessed:           []string{},
		RemainingAttempts: MaxWrong,
		Outcome:           InProgress,
		Score:             e.session.Score(),
	}
	if e.round == nil {
		return s
	}
	r := e.round
	s.RoundID = r.ID
	s.Difficulty = r.Difficulty
	s.Masked = r.MaskedWord()
	s.Guessed = r.Guessed()
	s.WrongCount = r.WrongCount()
	s.RemainingAttempts = r.RemainingAttempts()
	s.Outcome = r.Outcome()
	s.StartedAt = r.StartedAt
	if r.Outcome().Terminal() {
		s.Word = r.Word
	}
	return s
}
