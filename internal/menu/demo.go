package menu

import "github.com/shopspring/decimal"

// DemoItems is the built-in fallback catalog served when the live menu sheet
// is unreachable or unparsable. The UI stays usable in a visibly degraded
// demo mode instead of failing hard.
func DemoItems() []Item {
	demo := []struct {
		name     string
		category string
		price    string
		boxSize  string
	}{
		{"Chicken Wings", "Main Course", "18.99", "6 pcs"},
		{"Fried Rice", "Main Course", "15.00", "1 kg"},
		{"Fresh Juice", "Beverages", "6.50", "1 L"},
		{"Garden Salad", "Sides", "8.00", "Per Order"},
		{"Chocolate Cake", "Desserts", "12.00", "4 slices"},
	}

	items := make([]Item, 0, len(demo))
	for i, d := range demo {
		items = append(items, Item{
			ID:       i + 1,
			Name:     d.name,
			Category: d.category,
			Price:    decimal.RequireFromString(d.price),
			BoxSize:  FormatBoxSize(d.boxSize),
		})
	}
	return items
}
