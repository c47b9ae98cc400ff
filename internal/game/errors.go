package game

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every word pool configuration failure.
var ErrConfiguration = errors.New("game: configuration error")

// ConfigError reports a difficulty that has no usable word pool, or a pool
// entry that breaks the word rules.
type ConfigError struct {
	Difficulty Difficulty
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.Difficulty == "" {
		return fmt.Sprintf("game: configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("game: configuration error: difficulty %q: %s", e.Difficulty, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match any *ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }
