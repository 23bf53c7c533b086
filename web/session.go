// ABOUTME: Per-browser converter session holding one convert.State behind a mutex.
// ABOUTME: Every mutation goes through convert.Reduce; sequenced edits from a page are applied in order.
package web

import (
	"sync"
	"time"

	"github.com/2389-research/pxrem/convert"
)

// Session is one browser's converter.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	state    convert.State

	// Ordering of sequenced edits. A page numbers its edits from 1 under its
	// own client ID; edits that arrive behind a newer one are dropped.
	client string
	seq    uint64
}

func newSession(id string, base float64, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		state:     convert.New(base),
	}
}

// Apply reduces ev into the session state and returns the new state.
func (s *Session) Apply(ev convert.Event) convert.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = convert.Reduce(s.state, ev)
	return s.state
}

// ApplyEdit is Apply for edits numbered by a page. A zero seq is unordered and
// always applied. Otherwise an edit from the same client whose seq is not
// above the last applied one is stale: the state is returned unchanged and
// applied is false. A different client takes over the ordering.
func (s *Session) ApplyEdit(ev convert.Event, client string, seq uint64) (st convert.State, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != 0 {
		if client == s.client && seq <= s.seq {
			return s.state, false
		}
		s.client, s.seq = client, seq
	}
	s.state = convert.Reduce(s.state, ev)
	return s.state, true
}

// State returns a copy of the current state.
func (s *Session) State() convert.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastSeen reports when the session was created or last looked up.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// idleSince reports whether the session has not been seen since cutoff.
func (s *Session) idleSince(cutoff time.Time) bool {
	return s.LastSeen().Before(cutoff)
}
