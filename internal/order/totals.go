package order

import (
	"sort"

	"github.com/sayemas-kitchen/api/internal/menu"
	"github.com/shopspring/decimal"
)

// taxRate is applied to every subtotal. The resulting tax is computed but
// not yet surfaced anywhere the customer sees; Totals carries it as an
// extension point so a future display can choose.
var taxRate = decimal.RequireFromString("0.1")

// Line is one selected menu item with its quantity.
type Line struct {
	Item menu.Item
	Qty  int
}

// LineTotal is a Line enriched with derived amounts. HasUnits is false for
// per-order items and for unparsable box-size descriptors.
type LineTotal struct {
	Item       menu.Item
	Qty        int
	LineAmount decimal.Decimal
	TotalUnits decimal.Decimal
	Unit       string
	HasUnits   bool
}

// Totals is the derived order summary. It is recomputed on demand from the
// current selection and never mutated in place.
type Totals struct {
	Lines    []LineTotal
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives per-line amounts, scaled unit breakdowns, and the
// order summary from a selection. Lines come out sorted by item id. Money
// math is exact decimal throughout; rounding happens only at display
// boundaries.
func ComputeTotals(selection map[int]Line) Totals {
	ids := make([]int, 0, len(selection))
	for id := range selection {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	subtotal := decimal.Zero
	lines := make([]LineTotal, 0, len(ids))
	for _, id := range ids {
		ln := selection[id]
		qty := decimal.NewFromInt(int64(ln.Qty))
		lt := LineTotal{
			Item:       ln.Item,
			Qty:        ln.Qty,
			LineAmount: ln.Item.Price.Mul(qty),
		}
		if parsed, ok := menu.ParseBoxSize(ln.Item.BoxSize); ok {
			lt.TotalUnits = parsed.Qty.Mul(qty)
			lt.Unit = parsed.Unit
			lt.HasUnits = true
		}
		subtotal = subtotal.Add(lt.LineAmount)
		lines = append(lines, lt)
	}

	tax := subtotal.Mul(taxRate)
	return Totals{
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
