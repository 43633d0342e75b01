// Package sheets talks to the two spreadsheet-backed collaborators: the
// published menu CSV and the Apps Script webhook that appends order rows.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sayemas-kitchen/api/internal/order"
)

var (
	ErrNoMenuURL   = errors.New("menu csv url not configured")
	ErrNoOrdersURL = errors.New("orders webhook url not configured")
)

type Client struct {
	http      *http.Client
	menuURL   string
	ordersURL string
}

func NewClient(menuURL, ordersURL string) *Client {
	return &Client{
		http:      &http.Client{Timeout: 15 * time.Second},
		menuURL:   menuURL,
		ordersURL: ordersURL,
	}
}

// FetchMenuCSV downloads the published menu sheet.
func (c *Client) FetchMenuCSV(ctx context.Context) ([]byte, error) {
	if c.menuURL == "" {
		return nil, ErrNoMenuURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.menuURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// webhookResponse is the Apps Script reply shape.
type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SaveOrder posts the flattened record to the order webhook.
func (c *Client) SaveOrder(ctx context.Context, rec order.Record) error {
	if c.ordersURL == "" {
		return ErrNoOrdersURL
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ordersURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	defer resp.Body.Close()

	var wr webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return fmt.Errorf("save order: decode response: %w", err)
	}
	if !wr.Success {
		return fmt.Errorf("save order: webhook rejected: %s", wr.Message)
	}
	return nil
}

// SaveOrderAsync submits without blocking the caller. Failures are logged
// and never surfaced: the customer keeps their confirmation even when the
// durable write is lost.
func (c *Client) SaveOrderAsync(rec order.Record) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.SaveOrder(ctx, rec); err != nil {
			log.Printf("order %s: submit failed: %v", rec.OrderID, err)
		}
	}()
}
