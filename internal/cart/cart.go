// Package cart owns one customer's in-progress order: the item selection,
// the delivery form, and the order-timestamp lifecycle. It replaces the
// page-global mutable state of the original form with an explicitly owned
// object, so independent sessions never cross-contaminate.
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/sayemas-kitchen/api/internal/menu"
	"github.com/sayemas-kitchen/api/internal/order"
)

// ErrUnknownField is returned for a customer-form field the cart does not
// carry.
var ErrUnknownField = errors.New("unknown customer field")

// Cart is not safe for concurrent use; callers serialize access (the
// session wraps each cart in its own lock).
type Cart struct {
	selection map[int]order.Line
	customer  order.CustomerInfo
	orderTime time.Time
	now       func() time.Time
}

func New() *Cart {
	return &Cart{
		selection: make(map[int]order.Line),
		now:       time.Now,
	}
}

// Toggle adds the item with quantity 1, or removes it if already selected.
func (c *Cart) Toggle(item menu.Item) {
	if _, ok := c.selection[item.ID]; ok {
		delete(c.selection, item.ID)
		return
	}
	c.selection[item.ID] = order.Line{Item: item, Qty: 1}
	// Captured on the first selection and held fixed until the cart clears,
	// so edits before confirmation never shift the order ID's timestamp
	// component.
	if c.orderTime.IsZero() {
		c.orderTime = c.now()
	}
}

// AdjustQty applies a quantity delta to a selected item. Reaching zero
// removes the item from the selection entirely.
func (c *Cart) AdjustQty(id, delta int) {
	ln, ok := c.selection[id]
	if !ok {
		return
	}
	ln.Qty += delta
	if ln.Qty <= 0 {
		delete(c.selection, id)
		return
	}
	c.selection[id] = ln
}

// Remove drops an item regardless of its quantity.
func (c *Cart) Remove(id int) {
	delete(c.selection, id)
}

// SetCustomerField applies a single form-field update immediately, with no
// buffering.
func (c *Cart) SetCustomerField(field, value string) error {
	switch field {
	case "name":
		c.customer.Name = value
	case "phone":
		c.customer.Phone = value
	case "area":
		c.customer.Area = value
	case "address":
		c.customer.Address = value
	case "notes":
		c.customer.Notes = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ClearSelection empties the selection and resets the order timestamp, so
// the next selection captures a fresh one.
func (c *Cart) ClearSelection() {
	c.selection = make(map[int]order.Line)
	c.orderTime = time.Time{}
}

// Reset clears the selection, the timestamp, and the customer form.
func (c *Cart) Reset() {
	c.ClearSelection()
	c.customer = order.CustomerInfo{}
}

// Selection returns a copy of the current selection.
func (c *Cart) Selection() map[int]order.Line {
	out := make(map[int]order.Line, len(c.selection))
	for id, ln := range c.selection {
		out[id] = ln
	}
	return out
}

func (c *Cart) Customer() order.CustomerInfo {
	return c.customer
}

// OrderTime is the timestamp captured at first item selection; zero when
// the cart is empty of any selection history since the last clear.
func (c *Cart) OrderTime() time.Time {
	return c.orderTime
}

func (c *Cart) Empty() bool {
	return len(c.selection) == 0
}

// Totals derives the current order summary. Safe to call repeatedly from
// render paths; nothing is cached or mutated.
func (c *Cart) Totals() order.Totals {
	return order.ComputeTotals(c.selection)
}
