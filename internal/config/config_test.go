package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "DB_PATH", "WORDS_FILE", "SESSION_SECRET",
		"SESSION_TTL_HOURS", "SESSION_SWEEP_MINUTES", "CLIENT_ORIGIN", "DEFAULT_DIFFICULTY", "APP_ENV"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5175", c.Port)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, 720*time.Hour, c.SessionTTL)
	require.Equal(t, 10*time.Minute, c.SessionSweep)
	require.Equal(t, "./data/hangman.db", c.DBPath)
	require.Empty(t, c.WordsFile)
	require.Equal(t, game.Medium, c.DefaultDifficulty)
	require.True(t, c.UsingDevSecret())
	require.False(t, c.Production)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("SESSION_SWEEP_MINUTES", "1")
	t.Setenv("DEFAULT_DIFFICULTY", "HARD")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", c.Port)
	require.Equal(t, 2*time.Hour, c.SessionTTL)
	require.Equal(t, time.Minute, c.SessionSweep)
	require.Equal(t, game.Hard, c.DefaultDifficulty)
	require.True(t, c.Production)
	require.False(t, c.UsingDevSecret())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "-1")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("ttl not a number", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "forever")
		_, err := Load()
		require.ErrorContains(t, err, "parse env")
	})
	t.Run("sweep", func(t *testing.T) {
		t.Setenv("SESSION_SWEEP_MINUTES", "0")
		_, err := Load()
		require.ErrorContains(t, err, "SESSION_SWEEP_MINUTES")
	})
	t.Run("difficulty", func(t *testing.T) {
		t.Setenv("DEFAULT_DIFFICULTY", "expert")
		_, err := Load()
		require.True(t, errors.Is(err, game.ErrConfiguration))
	})
	t.Run("production without secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SESSION_SECRET", "")
		_, err := Load()
		require.ErrorContains(t, err, "SESSION_SECRET")
	})
	t.Run("production with dev secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SESSION_SECRET", devSecret)
		_, err := Load()
		require.ErrorContains(t, err, "SESSION_SECRET")
	})
}
