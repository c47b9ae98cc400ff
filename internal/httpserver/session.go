// internal/httpserver/session.go
//
// Session identity for HTTP clients.
//
// A session is one store.Entry (one engine, one score). Clients carry its ID
// in an HS256 JWT, either in the hangman_session cookie or as
// "Authorization: Bearer <token>". A missing, invalid or expired token, or a
// token for a session the process no longer knows (restart), silently gets a
// brand-new session and a fresh cookie.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/AwarewarAlmighty/HangmanGame/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "hangman_session"

// ctxSessionKey is the context key type for the request's *store.Entry.
type ctxSessionKey struct{}

// signSession creates an HS256 JWT whose subject is the session ID.
func (s *Server) signSession(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.opts.SessionSecret))
	return ss, exp, err
}

// parseSession validates a token and returns the session ID it carries.
func (s *Server) parseSession(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.Secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// withSession resolves (or creates) the caller's session and stores it in
// the request context.
func (s *Server) withSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var entry *store.Entry
			if tok := bearerOrCookie(r); tok != "" {
				if id, err := s.parseSession(tok); err == nil {
					entry, _ = s.store.Get(r.Context(), id)
				}
			}
			if entry == nil {
				var err error
				entry, err = s.store.Create(r.Context())
				if err != nil {
					log.Error().Err(err).Msg("create session")
					writeError(w, http.StatusInternalServerError, "session_failed")
					return
				}
				tok, exp, err := s.signSession(entry.ID)
				if err != nil {
					log.Error().Err(err).Msg("sign session")
					writeError(w, http.StatusInternalServerError, "session_failed")
					return
				}
				s.setSessionCookie(w, tok, exp)
				w.Header().Set("X-Session-Token", tok)
				log.Debug().Str("session", entry.ID).Msg("new session")
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, entry)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFrom returns the entry withSession attached.
func sessionFrom(r *http.Request) *store.Entry {
	e, _ := r.Context().Value(ctxSessionKey{}).(*store.Entry)
	return e
}

// bearerOrCookie extracts a bearer token from Authorization header or session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
