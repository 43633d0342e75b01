package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sayemas-kitchen/api/internal/cart"
	"github.com/sayemas-kitchen/api/internal/menu"
	"github.com/sayemas-kitchen/api/internal/order"
	"github.com/sayemas-kitchen/api/internal/session"
)

// SessionStore defines the session lookup surface handlers need.
// Satisfied by *session.Store; narrow interface for testability.
type SessionStore interface {
	Create() *session.Session
	Get(id uuid.UUID) (*session.Session, bool)
}

// ItemCatalog resolves menu items for cart operations.
// Satisfied by *menu.Catalog.
type ItemCatalog interface {
	Get(id int) (menu.Item, bool)
}

// SessionHandler handles session lifecycle and cart endpoints.
type SessionHandler struct {
	store   SessionStore
	catalog ItemCatalog
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store SessionStore, catalog ItemCatalog) *SessionHandler {
	return &SessionHandler{store: store, catalog: catalog}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted inside a session-scoped subrouter: /sessions/{sid}
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Delete("/", h.Reset)
	r.Post("/items/{id}/toggle", h.ToggleItem)
	r.Patch("/items/{id}", h.AdjustQty)
	r.Delete("/items/{id}", h.RemoveItem)
	r.Patch("/customer", h.UpdateCustomer)
	r.Get("/totals", h.Totals)
}

// --- Request / Response types ---

type sessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

type adjustQtyRequest struct {
	Delta int `json:"delta"`
}

type customerFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type lineResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	BoxSize    string `json:"box_size"`
	Qty        int    `json:"qty"`
	UnitPrice  string `json:"unit_price"`
	LineTotal  string `json:"line_total"`
	TotalUnits string `json:"total_units,omitempty"`
	Unit       string `json:"unit,omitempty"`
}

// totalsResponse carries subtotal, tax, and total separately even though the
// reference UI displays total == subtotal; the display layer chooses.
type totalsResponse struct {
	Lines    []lineResponse `json:"lines"`
	Subtotal string         `json:"subtotal"`
	Tax      string         `json:"tax"`
	Total    string         `json:"total"`
}

func toTotalsResponse(t order.Totals) totalsResponse {
	resp := totalsResponse{
		Lines:    make([]lineResponse, 0, len(t.Lines)),
		Subtotal: t.Subtotal.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
	for _, ln := range t.Lines {
		lr := lineResponse{
			ID:        ln.Item.ID,
			Name:      ln.Item.Name,
			BoxSize:   ln.Item.BoxSize,
			Qty:       ln.Qty,
			UnitPrice: ln.Item.Price.StringFixed(2),
			LineTotal: ln.LineAmount.StringFixed(2),
		}
		if ln.HasUnits {
			lr.TotalUnits = ln.TotalUnits.String()
			lr.Unit = ln.Unit
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}

// --- Handlers ---

// Create mints a new ordering session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: s.ID})
}

// ToggleItem selects an unselected item with quantity 1, or deselects it.
func (h *SessionHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}
	item, ok := h.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Cart.Toggle(item)
	writeJSON(w, http.StatusOK, toTotalsResponse(s.Cart.Totals()))
}

// AdjustQty applies a quantity delta; a selected item reaching zero is
// removed from the selection entirely.
func (h *SessionHandler) AdjustQty(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}

	var req adjustQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Delta == 0 {
		writeError(w, http.StatusBadRequest, "delta is required")
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Cart.AdjustQty(id, req.Delta)
	writeJSON(w, http.StatusOK, toTotalsResponse(s.Cart.Totals()))
}

// RemoveItem drops an item from the selection.
func (h *SessionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Cart.Remove(id)
	writeJSON(w, http.StatusOK, toTotalsResponse(s.Cart.Totals()))
}

// UpdateCustomer applies a single delivery-form field update.
func (h *SessionHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}

	var req customerFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Cart.SetCustomerField(req.Field, req.Value); err != nil {
		if errors.Is(err, cart.ErrUnknownField) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Totals returns the derived order summary for the current selection.
func (h *SessionHandler) Totals(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, toTotalsResponse(s.Cart.Totals()))
}

// Reset clears the selection, customer form, and any confirmed order id.
// The session itself (and its seed) survives, matching a form reset rather
// than a page reload.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Cart.Reset()
	s.OrderID = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// --- Helpers ---

func sessionFromRequest(store SessionStore, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	s, ok := store.Get(sid)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}

func itemIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}
