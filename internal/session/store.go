// Package session keeps per-visitor page state in memory. State lives until
// the visitor is idle for the configured TTL or is pushed out by newer
// visitors.
package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "portfolio_session"

// Store maps session IDs to visitor state.
type Store struct {
	cache *expirable.LRU[string, *State]
	seed  []string
}

// NewStore returns a store holding at most size sessions, each expiring
// ttl after its last use. New sessions start with the seed skills.
func NewStore(size int, ttl time.Duration, seed []string) *Store {
	onEvict := func(id string, _ *State) {
		slog.Debug("session evicted", "session", shortID(id))
	}
	return &Store{
		cache: expirable.NewLRU[string, *State](size, onEvict, ttl),
		seed:  append([]string(nil), seed...),
	}
}

// Get returns the state for id and refreshes its expiry.
func (s *Store) Get(id string) (*State, bool) {
	st, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, st)
	return st, true
}

// GetOrCreate returns the state for id. When id is unknown a new session
// is created and its ID returned in place of id.
func (s *Store) GetOrCreate(id string) (string, *State, bool) {
	if id != "" {
		if st, ok := s.Get(id); ok {
			return id, st, false
		}
	}
	id = uuid.NewString()
	st := newState(s.seed)
	s.cache.Add(id, st)
	slog.Debug("session created", "session", shortID(id))
	return id, st, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
