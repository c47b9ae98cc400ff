package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

func TestDefault(t *testing.T) {
	pool, err := Default()
	require.NoError(t, err)
	require.Equal(t, []game.Difficulty{game.Easy, game.Medium, game.Hard}, pool.Difficulties())
	for _, n := range pool.Stats() {
		require.Equal(t, 10, n)
	}
	require.True(t, pool.Contains(game.Easy, "CAT"))
	require.True(t, pool.Contains(game.Hard, "THUNDER"))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[pool]
Easy = ["fox", "owl"]
`), 0o644))

	pool, err := Load(path)
	require.NoError(t, err)
	require.True(t, pool.Contains(game.Easy, "FOX"))
	require.False(t, pool.Has(game.Medium))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	pool, err := Load("")
	require.NoError(t, err)
	require.True(t, pool.Has(game.Medium))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	tests := map[string]string{
		"bad toml":           `[pool`,
		"unknown difficulty": "[pool]\nexpert = [\"QUARTZ\"]",
		"empty list":         "[pool]\neasy = []",
		"invalid word":       "[pool]\neasy = [\"C4T\"]",
		"no pool":            `title = "x"`,
		"duplicate key":      "[pool]\neasy = [\"CAT\"]\nEASY = [\"DOG\"]",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			require.Error(t, err)
			if name != "bad toml" {
				require.True(t, errors.Is(err, game.ErrConfiguration))
			}
		})
	}
}

func TestParse_DuplicateDifficulty(t *testing.T) {
	for i := 0; i < 20; i++ {
		_, err := Parse("[pool]\neasy = [\"CAT\"]\n Easy = [\"DOG\"]\nmedium = [\"HOUSE\"]")
		var cfg *game.ConfigError
		require.True(t, errors.As(err, &cfg))
		require.Equal(t, game.Easy, cfg.Difficulty)
		require.Equal(t, "duplicate difficulty", cfg.Reason)
	}
}
