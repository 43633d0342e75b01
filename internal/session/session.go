package session

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sayemas-kitchen/api/internal/cart"
)

// Session is one customer's ordering session: the per-session seed, the
// cart, and the last confirmed order id. Handlers run concurrently, so
// callers hold the embedded lock around any cart or OrderID access.
type Session struct {
	sync.Mutex

	ID   uuid.UUID
	Seed string
	Cart *cart.Cart

	// OrderID is set on confirm and cleared when the order is placed or the
	// session resets.
	OrderID string

	lastSeen time.Time
}

func (s *Session) touch() {
	s.Lock()
	s.lastSeen = time.Now()
	s.Unlock()
}

// Store holds active sessions and expires idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// Create mints a session with a fresh seed.
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.New(),
		Seed:     newSeed(),
		Cart:     cart.New(),
		lastSeen: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session and marks it active.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch()
	}
	return s, ok
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Sweep drops sessions idle longer than the store TTL and reports how many
// were removed.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.Lock()
		idle := now.Sub(s.lastSeen)
		s.Unlock()
		if idle > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Janitor sweeps on an interval until ctx is done. Run as a goroutine:
//
//	go store.Janitor(ctx, 10*time.Minute)
func (st *Store) Janitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(now); n > 0 {
				log.Printf("expired %d idle sessions", n)
			}
		}
	}
}

// newSeed mints the per-session random token: base-36 random digits plus
// base-36 millis. It only decorrelates identical concurrent orders from
// different customers — not a security token, never persisted.
func newSeed() string {
	r := strconv.FormatUint(rand.Uint64(), 36)
	if len(r) > 13 {
		r = r[:13]
	}
	return r + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
