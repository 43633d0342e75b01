package menu

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Item is a single menu entry. Items are immutable once loaded; the catalog
// is replaced wholesale on each refresh.
type Item struct {
	ID       int
	Name     string
	Category string
	Price    decimal.Decimal
	BoxSize  string
}

// Catalog holds the currently served menu. Demo reports whether the built-in
// fallback catalog is active, which the UI must surface to the customer.
type Catalog struct {
	mu    sync.RWMutex
	items []Item
	byID  map[int]Item
	demo  bool
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[int]Item)}
}

// Replace swaps in a new menu.
func (c *Catalog) Replace(items []Item, demo bool) {
	byID := make(map[int]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	c.mu.Lock()
	c.items = items
	c.byID = byID
	c.demo = demo
	c.mu.Unlock()
}

// Items returns the menu in sheet order.
func (c *Catalog) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id.
func (c *Catalog) Get(id int) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.byID[id]
	return it, ok
}

// Demo reports whether the fallback catalog is being served.
func (c *Catalog) Demo() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.demo
}

// Fetcher retrieves the raw published menu CSV.
type Fetcher interface {
	FetchMenuCSV(ctx context.Context) ([]byte, error)
}

// Load fetches and parses the live menu into c. Any failure falls back to
// the built-in demo catalog and flags demo mode; the returned error reports
// why the live menu was unavailable, for logging only.
func Load(ctx context.Context, c *Catalog, f Fetcher) error {
	data, err := f.FetchMenuCSV(ctx)
	if err == nil {
		var items []Item
		items, err = ParseMenuCSV(data)
		if err == nil {
			c.Replace(items, false)
			return nil
		}
	}
	c.Replace(DemoItems(), true)
	return err
}
