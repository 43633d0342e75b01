package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sayemas-kitchen/api/internal/handler"
	"github.com/sayemas-kitchen/api/internal/menu"
	"github.com/sayemas-kitchen/api/internal/order"
	"github.com/sayemas-kitchen/api/internal/session"
	"github.com/sayemas-kitchen/api/internal/ws"
)

// mockSubmitter records submitted orders instead of posting them.
type mockSubmitter struct {
	mu      sync.Mutex
	records []order.Record
}

func (m *mockSubmitter) SaveOrderAsync(rec order.Record) {
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()
}

func (m *mockSubmitter) saved() []order.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]order.Record, len(m.records))
	copy(out, m.records)
	return out
}

// mockFeed records broadcast events instead of fanning them out.
type mockFeed struct {
	mu     sync.Mutex
	events []ws.Event
}

func (m *mockFeed) Broadcast(event ws.Event) {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
}

func (m *mockFeed) broadcasts() []ws.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ws.Event, len(m.events))
	copy(out, m.events)
	return out
}

// testEnv wires the session and order handlers onto a router the way the
// server does, backed by the demo catalog.
type testEnv struct {
	router    chi.Router
	store     *session.Store
	submitter *mockSubmitter
	feed      *mockFeed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := menu.NewCatalog()
	catalog.Replace(menu.DemoItems(), true)

	env := &testEnv{
		store:     session.NewStore(time.Hour),
		submitter: &mockSubmitter{},
		feed:      &mockFeed{},
	}

	sessionHandler := handler.NewSessionHandler(env.store, catalog)
	orderHandler := handler.NewOrderHandler(env.store, env.submitter, env.feed, "SAYEMA'S KITCHEN")

	r := chi.NewRouter()
	r.Post("/sessions", sessionHandler.Create)
	r.Route("/sessions/{sid}", func(r chi.Router) {
		sessionHandler.RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
	})
	env.router = r
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
}

// createSession mints a session through the API and returns its id.
func (env *testEnv) createSession(t *testing.T) string {
	t.Helper()

	rr := env.do(t, http.MethodPost, "/sessions", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", rr.Code)
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	decodeBody(t, rr, &resp)
	if resp.SessionID == "" {
		t.Fatal("create session: empty session_id")
	}
	return resp.SessionID
}

// fillCustomer patches a complete, valid delivery form.
func (env *testEnv) fillCustomer(t *testing.T, sid string) {
	t.Helper()

	fields := map[string]string{
		"name":    "Alice",
		"phone":   "01712345678",
		"area":    "inside",
		"address": "Road 5, Dhanmondi",
	}
	for field, value := range fields {
		rr := env.do(t, http.MethodPatch, "/sessions/"+sid+"/customer",
			map[string]string{"field": field, "value": value})
		if rr.Code != http.StatusOK {
			t.Fatalf("set %s: status %d (body %s)", field, rr.Code, rr.Body.String())
		}
	}
}

type totalsBody struct {
	Lines []struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Qty        int    `json:"qty"`
		LineTotal  string `json:"line_total"`
		TotalUnits string `json:"total_units"`
		Unit       string `json:"unit"`
	} `json:"lines"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}
