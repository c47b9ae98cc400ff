// internal/config/config.go
//
// Process configuration, read from the environment (and a .env file when
// present, loaded by main via godotenv before Load is called).
//
// Environment variables:
//   PORT                   listen port (default 5175)
//   LOG_LEVEL              zerolog level (default info)
//   DB_PATH                SQLite file for round history (default ./data/hangman.db)
//   WORDS_FILE             TOML word pool; empty uses the embedded default
//   SESSION_SECRET         HMAC key for session cookies
//   SESSION_TTL_HOURS      session cookie lifetime and idle cutoff (default 720)
//   SESSION_SWEEP_MINUTES  how often idle sessions are evicted (default 10)
//   CLIENT_ORIGIN          CORS origin (default http://localhost:5173)
//   DEFAULT_DIFFICULTY     difficulty of the first round of a session (default medium)
//   APP_ENV                "production" turns on Secure cookies

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

const devSecret = "dev_secret_change_me"

type Config struct {
	Port          string `env:"PORT" envDefault:"5175"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath        string `env:"DB_PATH" envDefault:"./data/hangman.db"`
	WordsFile     string `env:"WORDS_FILE"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	ClientOrigin  string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	AppEnv        string `env:"APP_ENV"`

	SessionTTLHours     int    `env:"SESSION_TTL_HOURS" envDefault:"720"`
	SessionSweepMinutes int    `env:"SESSION_SWEEP_MINUTES" envDefault:"10"`
	Difficulty          string `env:"DEFAULT_DIFFICULTY" envDefault:"medium"`

	// Derived by Load from the raw values above.
	SessionTTL        time.Duration
	SessionSweep      time.Duration
	DefaultDifficulty game.Difficulty
	Production        bool
}

// Load reads the configuration. It only fails on values that are present
// but malformed.
func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if c.SessionTTLHours <= 0 {
		return nil, errors.New("config: SESSION_TTL_HOURS must be a positive integer")
	}
	c.SessionTTL = time.Duration(c.SessionTTLHours) * time.Hour

	if c.SessionSweepMinutes <= 0 {
		return nil, errors.New("config: SESSION_SWEEP_MINUTES must be a positive integer")
	}
	c.SessionSweep = time.Duration(c.SessionSweepMinutes) * time.Minute

	d, ok := game.ParseDifficulty(c.Difficulty)
	if !ok {
		return nil, &game.ConfigError{Difficulty: game.Difficulty(c.Difficulty), Reason: "DEFAULT_DIFFICULTY is not a known difficulty"}
	}
	c.DefaultDifficulty = d

	c.Production = c.AppEnv == "production"
	if c.Production && c.UsingDevSecret() {
		return nil, errors.New("config: SESSION_SECRET must be set in production")
	}
	return c, nil
}

// UsingDevSecret reports whether the built-in session secret is in use.
func (c *Config) UsingDevSecret() bool { return c.SessionSecret == devSecret }
