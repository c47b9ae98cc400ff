package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AwarewarAlmighty/HangmanGame/internal/config"
	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
	"github.com/AwarewarAlmighty/HangmanGame/internal/history"
	"github.com/AwarewarAlmighty/HangmanGame/internal/httpserver"
	"github.com/AwarewarAlmighty/HangmanGame/internal/store"
	"github.com/AwarewarAlmighty/HangmanGame/internal/words"
)

func main() {
	_ = godotenv.Load()
	if os.Getenv("LOG_FORMAT") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.UsingDevSecret() {
		log.Warn().Msg("SESSION_SECRET not set, using development secret")
	}

	pool, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word pool")
	}
	if !pool.Has(cfg.DefaultDifficulty) {
		log.Fatal().Str("difficulty", string(cfg.DefaultDifficulty)).Msg("default difficulty has no words")
	}
	log.Info().Interface("words", pool.Stats()).Msg("word pool loaded")

	db, err := history.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := history.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	sessions := store.NewMemoryStore(func() *game.Engine {
		return game.NewEngine(pool, game.CryptoPicker{}, game.WithDefaultDifficulty(cfg.DefaultDifficulty))
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartSweeper(ctx, sessions, cfg.SessionSweep, cfg.SessionTTL)
	srv := httpserver.New(sessions, history.NewStore(db), pool, httpserver.Options{
		ClientOrigin:  cfg.ClientOrigin,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		Secure:        cfg.Production,
	})

	log.Info().Str("port", cfg.Port).Msg("starting hangman server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
