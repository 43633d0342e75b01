package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateAndGet(t *testing.T) {
	st := NewStore(time.Hour)

	s := st.Create()
	if s.Seed == "" {
		t.Error("created session has no seed")
	}
	if s.Cart == nil {
		t.Fatal("created session has no cart")
	}

	got, ok := st.Get(s.ID)
	if !ok || got != s {
		t.Errorf("Get(%s) = %v, %v", s.ID, got, ok)
	}

	if _, ok := st.Get(uuid.New()); ok {
		t.Error("Get returned a session for an unknown id")
	}
}

func TestSeedsAreUnique(t *testing.T) {
	st := NewStore(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := st.Create()
		if seen[s.Seed] {
			t.Fatalf("duplicate seed %q", s.Seed)
		}
		seen[s.Seed] = true
	}
}

func TestDelete(t *testing.T) {
	st := NewStore(time.Hour)
	s := st.Create()

	st.Delete(s.ID)
	if _, ok := st.Get(s.ID); ok {
		t.Error("session still reachable after delete")
	}
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	st := NewStore(time.Hour)

	idle := st.Create()
	active := st.Create()

	idle.Lock()
	idle.lastSeen = time.Now().Add(-2 * time.Hour)
	idle.Unlock()

	if n := st.Sweep(time.Now()); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if _, ok := st.Get(idle.ID); ok {
		t.Error("idle session survived the sweep")
	}
	if _, ok := st.Get(active.ID); !ok {
		t.Error("active session was swept")
	}
}

// Get marks the session active, protecting it from the next sweep.
func TestGetTouchesSession(t *testing.T) {
	st := NewStore(time.Hour)
	s := st.Create()

	s.Lock()
	s.lastSeen = time.Now().Add(-2 * time.Hour)
	s.Unlock()

	st.Get(s.ID)

	if n := st.Sweep(time.Now()); n != 0 {
		t.Errorf("Sweep removed %d sessions after a fresh Get, want 0", n)
	}
}
