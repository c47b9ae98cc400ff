// internal/words/words.go
//
// Provides word pool loading for the game engine.
//
// Responsibilities:
//   - Decode a difficulty → words mapping from TOML.
//   - Fall back to the embedded default_words.toml when no file is configured.
//   - Hand the lists to game.NewWordPool, which enforces the word rules.
//
// File format:
//
//	[pool]
//	easy   = ["CAT", "DOG"]
//	medium = ["HOUSE"]
//	hard   = ["JOURNEY"]
//
// Constraints:
//   • Keys must be known difficulties; lists must be non-empty.
//   • Words are trimmed and uppercased, then must be A–Z and ≥ 3 letters.
//   • The embedded default is decoded once (sync.Once).

package words

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

//go:embed default_words.toml
var embeddedPool string

var (
	defaultOnce sync.Once
	defaultPool game.WordPool
	defaultErr  error
)

// poolFile is the on-disk TOML shape.
type poolFile struct {
	Pool map[string][]string `toml:"pool"`
}

// Default returns the embedded word pool.
func Default() (game.WordPool, error) {
	defaultOnce.Do(func() {
		defaultPool, defaultErr = Parse(embeddedPool)
	})
	return defaultPool, defaultErr
}

// Load reads the pool from path, or returns Default when path is empty.
func Load(path string) (game.WordPool, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return game.WordPool{}, fmt.Errorf("words: read %s: %w", path, err)
	}
	pool, err := Parse(string(b))
	if err != nil {
		return game.WordPool{}, fmt.Errorf("words: %s: %w", path, err)
	}
	return pool, nil
}

// Parse decodes TOML text into a validated pool.
func Parse(text string) (game.WordPool, error) {
	var f poolFile
	if _, err := toml.Decode(text, &f); err != nil {
		return game.WordPool{}, fmt.Errorf("decode pool: %w", err)
	}
	lists := make(map[game.Difficulty][]string, len(f.Pool))
	for k, v := range f.Pool {
		d, ok := game.ParseDifficulty(k)
		if !ok {
			return game.WordPool{}, &game.ConfigError{Difficulty: game.Difficulty(k), Reason: "unknown difficulty"}
		}
		if _, dup := lists[d]; dup {
			return game.WordPool{}, &game.ConfigError{Difficulty: d, Reason: "duplicate difficulty"}
		}
		lists[d] = v
	}
	return game.NewWordPool(lists)
}
