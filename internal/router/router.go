package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sayemas-kitchen/api/internal/config"
	"github.com/sayemas-kitchen/api/internal/handler"
	"github.com/sayemas-kitchen/api/internal/menu"
	mw "github.com/sayemas-kitchen/api/internal/middleware"
	"github.com/sayemas-kitchen/api/internal/session"
	"github.com/sayemas-kitchen/api/internal/sheets"
	"github.com/sayemas-kitchen/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, catalog *menu.Catalog, sessions *session.Store, client *sheets.Client, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration: the ordering form is a browser client on a
	// different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Staff auth (public)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.StaffPasswordHash)
	authHandler.RegisterRoutes(r)

	// WebSocket staff feed (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Menu
	menuHandler := handler.NewMenuHandler(catalog, func(ctx context.Context) error {
		return menu.Load(ctx, catalog, client)
	})
	r.Route("/menu", menuHandler.RegisterRoutes)

	// Sessions and the order flow
	sessionHandler := handler.NewSessionHandler(sessions, catalog)
	orderHandler := handler.NewOrderHandler(sessions, client, hub, cfg.ShopName)
	r.Post("/sessions", sessionHandler.Create)
	r.Route("/sessions/{sid}", func(r chi.Router) {
		sessionHandler.RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
	})

	// Staff-only routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))
		r.Post("/menu/reload", menuHandler.Reload)
	})

	return r
}
