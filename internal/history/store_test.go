package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	// Second run is a no-op.
	require.NoError(t, Migrate(db))
	return NewStore(db)
}

func TestMigrate_TracksVersion(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for i := 0; i < 2; i++ {
		require.NoError(t, Migrate(db))
	}
	var version int
	var dirty bool
	require.NoError(t, db.QueryRow(`SELECT version, dirty FROM schema_migrations`).Scan(&version, &dirty))
	require.Equal(t, 1, version)
	require.False(t, dirty)

	// db is still usable after migrating.
	require.NoError(t, db.Ping())
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM rounds`).Scan(&n))
	require.Zero(t, n)
}

func TestStore_InsertAndRecent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	st := openTestStore(t)

	for i, word := range []string{"CAT", "DOG", "SUN"} {
		r := Result{
			RoundID:    word + "-round",
			SessionID:  "s1",
			Difficulty: game.Easy,
			Word:       word,
			Outcome:    game.Won,
			WrongCount: i,
			Guesses:    3 + i,
			ScoreAfter: 10 * (i + 1),
			ElapsedMs:  int64(1000 * i),
		}
		require.NoError(t, st.InsertResult(ctx, r))
	}
	require.NoError(t, st.InsertResult(ctx, Result{
		RoundID: "other", SessionID: "s2", Difficulty: game.Hard, Word: "JOURNEY", Outcome: game.Lost, WrongCount: 6,
	}))

	got, err := st.Recent(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "SUN", got[0].Word)
	require.Equal(t, "CAT", got[2].Word)
	require.Equal(t, game.Won, got[0].Outcome)
	require.Equal(t, 30, got[0].ScoreAfter)
	require.NotEmpty(t, got[0].FinishedAt)

	got, err = st.Recent(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = st.Recent(ctx, "s2", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, game.Lost, got[0].Outcome)
}

func TestStore_RecentClampsLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	for i := 0; i < MaxLimit+5; i++ {
		require.NoError(t, st.InsertResult(ctx, Result{
			RoundID: fmt.Sprintf("r%03d", i), SessionID: "s1", Difficulty: game.Easy, Word: "CAT", Outcome: game.Won,
		}))
	}

	got, err := st.Recent(ctx, "s1", 1<<41)
	require.NoError(t, err)
	require.Len(t, got, MaxLimit)

	got, err = st.Recent(ctx, "s1", -3)
	require.NoError(t, err)
	require.Len(t, got, DefaultLimit)
}

func TestStore_InsertIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	r := Result{RoundID: "r1", SessionID: "s", Difficulty: game.Medium, Word: "HOUSE", Outcome: game.Won}
	require.NoError(t, st.InsertResult(ctx, r))
	r.ScoreAfter = 999
	require.NoError(t, st.InsertResult(ctx, r))

	got, err := st.Recent(ctx, "s", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].ScoreAfter)
}

func TestResultFrom(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	snap := game.Snapshot{
		RoundID:    "r",
		Difficulty: game.Easy,
		Guessed:    []string{"C", "A", "X", "T"},
		WrongCount: 1,
		Outcome:    game.Won,
		Score:      20,
		Word:       "CAT",
		StartedAt:  start,
	}
	r := ResultFrom("sid", snap, start.Add(1500*time.Millisecond))
	require.Equal(t, "sid", r.SessionID)
	require.Equal(t, 4, r.Guesses)
	require.Equal(t, int64(1500), r.ElapsedMs)
	require.Equal(t, "CAT", r.Word)
	require.Equal(t, 20, r.ScoreAfter)
}
