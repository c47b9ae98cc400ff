// internal/store/memory.go
//
// In-memory registry of player sessions, one game.Engine each.
//
// Characteristics:
//   - Entries are keyed by a random session ID (uuid).
//   - The map is guarded by an RWMutex (concurrent lookups, exclusive writes).
//   - Each Entry carries its own mutex; Entry.Do is the single-writer lock
//     every engine call goes through, so a won round is credited once even
//     if the same client races itself.
//   - Each Entry records when it was last used (Get or Do); Sweep drops the
//     ones idle longer than a cutoff, so abandoned sessions do not pile up.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/AwarewarAlmighty/HangmanGame/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the registry of player sessions.
type Store interface {
	// Create registers a new session with a fresh engine.
	Create(ctx context.Context) (*Entry, error)

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete drops a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len() int

	// Sweep deletes every session not used for longer than maxIdle and
	// returns how many were removed.
	Sweep(ctx context.Context, maxIdle time.Duration) (int, error)
}

// Entry is one player's session.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	engine   *game.Engine
	now      func() time.Time
	lastSeen atomic.Int64 // unix nanos
}

// Do runs fn with exclusive access to the entry's engine.
func (e *Entry) Do(fn func(eng *game.Engine)) {
	e.touch()
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.engine)
}

// LastSeen is the last time the session was looked up or used.
func (e *Entry) LastSeen() time.Time {
	return time.Unix(0, e.lastSeen.Load()).UTC()
}

func (e *Entry) touch() { e.lastSeen.Store(e.now().UnixNano()) }

// Option configures a memory store.
type Option func(*memory)

// WithClock replaces time.Now for last-seen bookkeeping (tests).
func WithClock(now func() time.Time) Option {
	return func(m *memory) { m.now = now }
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu        sync.RWMutex
	sessions  map[string]*Entry
	newEngine func() *game.Engine
	now       func() time.Time
}

// NewMemoryStore constructs a Store whose sessions get engines from newEngine.
func NewMemoryStore(newEngine func() *game.Engine, opts ...Option) Store {
	m := &memory{sessions: make(map[string]*Entry), newEngine: newEngine, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Create adds a new session to the map.
func (m *memory) Create(ctx context.Context) (*Entry, error) {
	e := &Entry{
		ID:        uuid.NewString(),
		CreatedAt: m.now().UTC(),
		engine:    m.newEngine(),
		now:       m.now,
	}
	e.touch()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[e.ID] = e
	return e, nil
}

// Get looks up a session by ID and marks it as used.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	e.touch()
	return e, nil
}

// Delete removes a session from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep collects idle IDs under the read lock, then removes them through
// Delete. Each entry is re-checked just before it is deleted.
func (m *memory) Sweep(ctx context.Context, maxIdle time.Duration) (int, error) {
	cutoff := m.now().Add(-maxIdle).UnixNano()

	m.mu.RLock()
	var stale []string
	for id, e := range m.sessions {
		if e.lastSeen.Load() < cutoff {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		m.mu.RLock()
		e, ok := m.sessions[id]
		m.mu.RUnlock()
		if !ok || e.lastSeen.Load() >= cutoff {
			continue
		}
		if err := m.Delete(ctx, id); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
