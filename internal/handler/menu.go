package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayemas-kitchen/api/internal/menu"
)

// MenuCatalog defines the catalog read surface menu handlers need.
// Satisfied by *menu.Catalog; narrow interface for testability.
type MenuCatalog interface {
	Items() []menu.Item
	Demo() bool
}

// ReloadFunc re-fetches the live menu into the catalog.
type ReloadFunc func(ctx context.Context) error

// MenuHandler serves the menu and the staff-triggered refresh.
type MenuHandler struct {
	catalog MenuCatalog
	reload  ReloadFunc
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(catalog MenuCatalog, reload ReloadFunc) *MenuHandler {
	return &MenuHandler{catalog: catalog, reload: reload}
}

// RegisterRoutes registers public menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// --- Response types ---

type menuItemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	BoxSize  string `json:"box_size"`
}

type menuResponse struct {
	Items []menuItemResponse `json:"items"`
	// Demo tells the UI the fallback catalog is active so it can show the
	// degraded state to the customer.
	Demo bool `json:"demo"`
}

func (h *MenuHandler) menuResponse() menuResponse {
	items := h.catalog.Items()
	resp := menuResponse{
		Items: make([]menuItemResponse, 0, len(items)),
		Demo:  h.catalog.Demo(),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, menuItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price.StringFixed(2),
			BoxSize:  it.BoxSize,
		})
	}
	return resp
}

// --- Handlers ---

// List returns the current menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.menuResponse())
}

// Reload re-fetches the live sheet and swaps the catalog wholesale.
// Staff-only; mounted behind authentication. A failed fetch falls back to
// the demo catalog, so the response reports the outcome via the demo flag
// rather than an error status.
func (h *MenuHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.reload(r.Context()); err != nil {
		log.Printf("menu reload failed, serving demo catalog: %v", err)
	}
	writeJSON(w, http.StatusOK, h.menuResponse())
}
