// internal/httpserver/routes_game.go
//
// HTTP routes for playing Hangman. Every route acts on the caller's session
// (see session.go):
//   - POST /game/new       → start a round ({"difficulty": "easy"|"medium"|"hard"}, optional)
//   - POST /game/guess     → guess one letter ({"letter": "A"})
//   - GET  /game           → current round snapshot
//   - POST /session/reset  → score back to 0, round discarded
//   - GET  /history        → this session's finished rounds, newest first
//
// Finished rounds are written to the history store best-effort; a DB failure
// is logged and never changes the response.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
	"github.com/AwarewarAlmighty/HangmanGame/internal/history"
)

// mountGame registers the session-scoped routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game", s.handleState)
	r.Post("/session/reset", s.handleReset)
	r.Get("/history", s.handleHistory)
}

// newGameReq is the request payload for POST /game/new.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // empty = keep the session's difficulty
}

// handleNewGame starts a round. An empty body restarts on the current difficulty.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var d game.Difficulty
	if req.Difficulty != "" {
		var ok bool
		if d, ok = game.ParseDifficulty(req.Difficulty); !ok {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
	}

	sess := sessionFrom(r)
	var (
		snap game.Snapshot
		err  error
	)
	sess.Do(func(eng *game.Engine) {
		if d == "" {
			snap, err = eng.Restart()
			return
		}
		snap, err = eng.StartRound(d)
	})
	if err != nil {
		if errors.Is(err, game.ErrConfiguration) {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
		log.Error().Err(err).Str("session", sess.ID).Msg("start round")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	log.Debug().Str("session", sess.ID).Str("round", snap.RoundID).Str("difficulty", string(snap.Difficulty)).Msg("round started")
	_ = json.NewEncoder(w).Encode(snap)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Letter string `json:"letter"`
}
type guessRes struct {
	Result game.GuessResult `json:"result"` // "hit" | "miss" | "ignored"
	State  game.Snapshot    `json:"state"`
}

// handleGuess applies one letter to the session's round. Repeated letters,
// non-letters and guesses on a finished (or missing) round come back as
// "ignored" with the state unchanged.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if utf8.RuneCountInString(req.Letter) != 1 {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	letter, _ := utf8.DecodeRuneInString(req.Letter)

	sess := sessionFrom(r)
	var (
		snap game.Snapshot
		res  game.GuessResult
	)
	sess.Do(func(eng *game.Engine) {
		snap, res = eng.Guess(letter)
	})

	if res != game.Ignored && snap.Outcome.Terminal() {
		s.recordRound(r, sess.ID, snap)
	}
	_ = json.NewEncoder(w).Encode(guessRes{Result: res, State: snap})
}

// handleState returns the current round, or 404 no_round before the first one.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	sessionFrom(r).Do(func(eng *game.Engine) { snap = eng.Snapshot() })
	if snap.RoundID == "" {
		writeError(w, http.StatusNotFound, "no_round")
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// handleReset clears the session's score and round.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	sessionFrom(r).Do(func(eng *game.Engine) { snap = eng.ResetSession() })
	_ = json.NewEncoder(w).Encode(snap)
}

// historyRes is returned by GET /history.
type historyRes struct {
	Rounds []history.Result `json:"rounds"`
}

// handleHistory lists the session's finished rounds (?limit=N, 1..history.MaxLimit, default 20).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		_ = json.NewEncoder(w).Encode(historyRes{Rounds: []history.Result{}})
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > history.MaxLimit {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	rows, err := s.history.Recent(r.Context(), sessionFrom(r).ID, limit)
	if err != nil {
		log.Error().Err(err).Msg("history query")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(historyRes{Rounds: rows})
}

// recordRound persists a finished round (best effort, non-fatal if it fails).
func (s *Server) recordRound(r *http.Request, sessionID string, snap game.Snapshot) {
	if s.history == nil {
		return
	}
	res := history.ResultFrom(sessionID, snap, time.Now().UTC())
	if err := s.history.InsertResult(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("round", snap.RoundID).Msg("record round")
	}
}
