package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sayemas-kitchen/api/internal/config"
	"github.com/sayemas-kitchen/api/internal/menu"
	"github.com/sayemas-kitchen/api/internal/router"
	"github.com/sayemas-kitchen/api/internal/session"
	"github.com/sayemas-kitchen/api/internal/sheets"
	"github.com/sayemas-kitchen/api/internal/ws"
)

func main() {
	cfg := config.Load()

	client := sheets.NewClient(cfg.MenuCSVURL, cfg.OrdersWebhookURL)

	// Load the menu once at startup; failure degrades to the demo catalog.
	catalog := menu.NewCatalog()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	if err := menu.Load(ctx, catalog, client); err != nil {
		log.Printf("menu load failed, serving demo catalog: %v", err)
	}
	cancel()

	sessions := session.NewStore(2 * time.Hour)
	go sessions.Janitor(context.Background(), 10*time.Minute)

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, catalog, sessions, client, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
