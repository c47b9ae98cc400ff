package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

const (
	// DefaultLimit is used by Recent when the caller passes limit <= 0.
	DefaultLimit = 20
	// MaxLimit is the most rows Recent will ever return.
	MaxLimit = 100
)

// Result is one finished round.
type Result struct {
	RoundID    string          `json:"roundId"`
	SessionID  string          `json:"-"`
	Difficulty game.Difficulty `json:"difficulty"`
	Word       string          `json:"word"`
	Outcome    game.Outcome    `json:"outcome"`
	WrongCount int             `json:"wrongCount"`
	Guesses    int             `json:"guesses"`
	ScoreAfter int             `json:"scoreAfter"`
	ElapsedMs  int64           `json:"elapsedMs"`
	FinishedAt string          `json:"finishedAt,omitempty"`
}

// ResultFrom builds a Result from the snapshot of a finished round.
func ResultFrom(sessionID string, s game.Snapshot, now time.Time) Result {
	return Result{
		RoundID:    s.RoundID,
		SessionID:  sessionID,
		Difficulty: s.Difficulty,
		Word:       s.Word,
		Outcome:    s.Outcome,
		WrongCount: s.WrongCount,
		Guesses:    len(s.Guessed),
		ScoreAfter: s.Score,
		ElapsedMs:  now.Sub(s.StartedAt).Milliseconds(),
	}
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records a finished round. A round ID already present is
// ignored, so retries are harmless.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO rounds
		    (id, session_id, difficulty, word, outcome, wrong_count, guesses, score_after, elapsed_ms)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		r.RoundID, r.SessionID, string(r.Difficulty), r.Word, string(r.Outcome),
		r.WrongCount, r.Guesses, r.ScoreAfter, r.ElapsedMs,
	)
	return err
}

// Recent returns the session's finished rounds, newest first. limit is
// clamped to MaxLimit.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, difficulty, word, outcome, wrong_count, guesses, score_after, elapsed_ms, finished_at
		 FROM rounds
		 WHERE session_id=?
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var d, o string
		if err := rows.Scan(&r.RoundID, &r.SessionID, &d, &r.Word, &o,
			&r.WrongCount, &r.Guesses, &r.ScoreAfter, &r.ElapsedMs, &r.FinishedAt); err != nil {
			return nil, err
		}
		r.Difficulty, r.Outcome = game.Difficulty(d), game.Outcome(o)
		out = append(out, r)
	}
	return out, rows.Err()
}
