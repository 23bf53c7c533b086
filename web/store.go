// ABOUTME: In-memory registry of converter sessions keyed by random ID, bounded in count and idle time.
// ABOUTME: The least recently seen session makes room for a new one; a ticker sweeps idle sessions.
package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the converter sessions of the browsers currently using the
// server. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	limit    int
	idle     time.Duration
	baseSize float64
	now      func() time.Time
}

// NewStore returns a Store holding at most limit sessions, each dropped after
// idle without a lookup. New sessions start converting at baseSize.
func NewStore(limit int, idle time.Duration, baseSize float64) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		limit:    max(limit, 1),
		idle:     idle,
		baseSize: baseSize,
		now:      time.Now,
	}
}

// Create registers a fresh converter session, evicting the least recently
// seen one when the store is full.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.baseSize, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.sessions) >= s.limit {
		s.evictLeastRecentLocked()
	}
	s.sessions[sess.ID] = sess
	return sess
}

// evictLeastRecentLocked drops the session with the oldest lastSeen. s.mu
// must be held for writing.
func (s *Store) evictLeastRecentLocked() {
	var (
		victim string
		oldest time.Time
	)
	for id, sess := range s.sessions {
		if seen := sess.LastSeen(); victim == "" || seen.Before(oldest) {
			victim, oldest = id, seen
		}
	}
	delete(s.sessions, victim)
}

// Get looks up a session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup drops every session idle for longer than the store's idle limit and
// returns how many were dropped.
func (s *Store) Cleanup() int {
	cutoff := s.now().Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartCleanup runs Cleanup every interval until the returned stop function
// is called.
func (s *Store) StartCleanup(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
