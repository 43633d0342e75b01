package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sayemas-kitchen/api/internal/enum"
	"github.com/sayemas-kitchen/api/internal/order"
	"github.com/sayemas-kitchen/api/internal/ws"
)

// OrderSubmitter persists confirmed orders to the external order store.
// Satisfied by *sheets.Client; narrow interface for testability.
type OrderSubmitter interface {
	SaveOrderAsync(rec order.Record)
}

// OrderFeed broadcasts placed orders to the staff dashboard.
// Satisfied by *ws.Hub.
type OrderFeed interface {
	Broadcast(event ws.Event)
}

// OrderHandler handles the confirm and place steps of the order flow.
type OrderHandler struct {
	store     SessionStore
	submitter OrderSubmitter
	feed      OrderFeed
	shopName  string
	now       func() time.Time
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store SessionStore, submitter OrderSubmitter, feed OrderFeed, shopName string) *OrderHandler {
	return &OrderHandler{
		store:     store,
		submitter: submitter,
		feed:      feed,
		shopName:  shopName,
		now:       time.Now,
	}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted inside a session-scoped subrouter: /sessions/{sid}
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/order/confirm", h.Confirm)
	r.Post("/order/place", h.Place)
}

// --- Response types ---

type confirmResponse struct {
	OrderID string         `json:"order_id"`
	Totals  totalsResponse `json:"totals"`
	// Text is the summary block the customer can paste into messenger.
	Text string `json:"text"`
}

type placeResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
}

// --- Handlers ---

// Confirm runs the validation gate and, if it passes, derives the order ID
// and the review snapshot. Nothing is submitted yet; re-running confirm
// after edits produces a new ID since edits change the signature.
func (h *OrderHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	if s.Cart.Empty() {
		writeError(w, http.StatusUnprocessableEntity, "cart is empty")
		return
	}
	info := s.Cart.Customer()
	if err := order.Validate(info); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	selection := s.Cart.Selection()
	orderID := order.GenerateID(selection, info, s.Seed, s.Cart.OrderTime())
	s.OrderID = orderID

	t := order.ComputeTotals(selection)
	writeJSON(w, http.StatusOK, confirmResponse{
		OrderID: orderID,
		Totals:  toTotalsResponse(t),
		Text:    order.ConfirmationText(h.shopName, orderID, t, info),
	})
}

// Place submits the confirmed order to the spreadsheet webhook and resets
// the cart for the next order. Submission is fire-and-forget: the customer
// always gets their confirmation, even if the durable write later fails.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.store, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	if s.OrderID == "" {
		writeError(w, http.StatusConflict, "order has not been confirmed")
		return
	}

	rec := order.BuildRecord(s.OrderID, s.Cart.Totals(), s.Cart.Customer(), h.now())
	h.submitter.SaveOrderAsync(rec)

	if payload, err := json.Marshal(rec); err == nil {
		h.feed.Broadcast(ws.Event{Type: enum.EventOrderPlaced, Payload: payload})
	}

	orderID := s.OrderID
	s.Cart.Reset()
	s.OrderID = ""

	writeJSON(w, http.StatusOK, placeResponse{Success: true, OrderID: orderID})
}
