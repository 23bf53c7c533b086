// ABOUTME: Tests for the in-memory session store
// ABOUTME: Covers creation, lookup, capacity eviction, and TTL cleanup

package web

import (
	"testing"
	"time"

	"github.com/2389-research/pxrem/convert"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(10, time.Hour, 12)

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("expected non-empty session ID")
	}
	if sess.State().Base != 12 {
		t.Errorf("expected base 12, got %v", sess.State().Base)
	}

	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Fatal("expected to retrieve the created session")
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("expected lookup of unknown ID to fail")
	}
}

func TestStoreInvalidBaseFallsBack(t *testing.T) {
	store := NewStore(10, time.Hour, 0)
	if got := store.Create().State().Base; got != convert.DefaultBaseSize {
		t.Errorf("expected default base, got %v", got)
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	store := NewStore(2, time.Hour, 16)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	first := store.Create()
	clock = clock.Add(time.Minute)
	second := store.Create()
	clock = clock.Add(time.Minute)
	third := store.Create()

	if store.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", store.Len())
	}
	if _, ok := store.Get(first.ID); ok {
		t.Error("expected oldest session to be evicted")
	}
	for _, s := range []*Session{second, third} {
		if _, ok := store.Get(s.ID); !ok {
			t.Errorf("expected session %s to survive", s.ID)
		}
	}
}

func TestStoreCleanup(t *testing.T) {
	store := NewStore(10, time.Hour, 16)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	stale := store.Create()
	clock = clock.Add(50 * time.Minute)
	fresh := store.Create()
	clock = clock.Add(20 * time.Minute)

	store.Cleanup()

	if _, ok := store.Get(stale.ID); ok {
		t.Error("expected stale session to be removed")
	}
	if _, ok := store.Get(fresh.ID); !ok {
		t.Error("expected fresh session to remain")
	}
}

func TestStoreStartCleanup(t *testing.T) {
	store := NewStore(10, time.Nanosecond, 16)
	store.Create()

	stop := store.StartCleanup(time.Millisecond)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected background cleanup to remove expired session")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSessionApply(t *testing.T) {
	sess := newSession("id", 16, time.Now())
	st := sess.Apply(convert.Event{Kind: convert.EventPxEdited, Value: "8"})
	if st.Rem != "0.5" {
		t.Errorf("expected rem 0.5, got %q", st.Rem)
	}
	if sess.State() != st {
		t.Error("expected State to reflect the applied event")
	}
}

func TestSessionApplyEditOrdering(t *testing.T) {
	sess := newSession("id", 16, time.Now())
	px := func(v string) convert.Event { return convert.Event{Kind: convert.EventPxEdited, Value: v} }

	if _, applied := sess.ApplyEdit(px("32"), "a", 2); !applied {
		t.Fatal("expected first numbered edit to apply")
	}
	st, applied := sess.ApplyEdit(px("3"), "a", 1)
	if applied || st.Px != "32" {
		t.Errorf("expected seq 1 after seq 2 to be dropped, got applied=%v px %q", applied, st.Px)
	}
	if _, applied := sess.ApplyEdit(px("33"), "a", 2); applied {
		t.Error("expected a repeated seq to be dropped")
	}
	if st, applied := sess.ApplyEdit(px("4"), "b", 1); !applied || st.Px != "4" {
		t.Errorf("expected a new client to take over, got applied=%v px %q", applied, st.Px)
	}
	if st, applied := sess.ApplyEdit(px("5"), "b", 0); !applied || st.Px != "5" {
		t.Errorf("expected seq 0 to always apply, got applied=%v px %q", applied, st.Px)
	}
}

func TestStoreGetRefreshesLastSeen(t *testing.T) {
	store := NewStore(2, time.Hour, 16)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	first := store.Create()
	clock = clock.Add(time.Minute)
	second := store.Create()
	clock = clock.Add(time.Minute)
	if _, ok := store.Get(first.ID); !ok {
		t.Fatal("expected first session")
	}
	if !first.LastSeen().Equal(clock) {
		t.Errorf("LastSeen = %v, want %v", first.LastSeen(), clock)
	}

	clock = clock.Add(time.Minute)
	store.Create()

	if _, ok := store.Get(second.ID); ok {
		t.Error("expected the least recently seen session to be evicted")
	}
	if _, ok := store.Get(first.ID); !ok {
		t.Error("expected the recently looked-up session to survive")
	}
}

func TestStoreCleanupCount(t *testing.T) {
	store := NewStore(10, time.Hour, 16)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	store.Create()
	store.Create()
	clock = clock.Add(2 * time.Hour)
	store.Create()

	if got := store.Cleanup(); got != 2 {
		t.Errorf("Cleanup() = %d, want 2", got)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session left, got %d", store.Len())
	}
}

func TestStoreStopIsIdempotent(t *testing.T) {
	stop := NewStore(1, time.Hour, 16).StartCleanup(time.Hour)
	stop()
	stop()
}
