package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/sayemas-kitchen/api/internal/enum"
)

// bdZone is the shop's civil time. Order times are recorded at a fixed
// UTC+6 regardless of where the server runs.
var bdZone = time.FixedZone("UTC+6", 6*60*60)

// Record is the flattened order shape the spreadsheet webhook expects.
// Field names match the Apps Script columns.
type Record struct {
	OrderID        string `json:"orderId"`
	OrderTime      string `json:"orderTime"`
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ItemsList      string `json:"itemsList"`
	Subtotal       string `json:"subtotal"`
	DeliveryCharge int    `json:"deliveryCharge"`
	Area           string `json:"area"`
	Comment        string `json:"comment"`
}

// BuildRecord flattens a confirmed order for submission. The subtotal is
// display-rounded to whole currency units and the phone normalized to its
// 11-digit form. Delivery charge is always 0: delivery is priced manually
// out of band.
func BuildRecord(orderID string, t Totals, info CustomerInfo, now time.Time) Record {
	return Record{
		OrderID:        orderID,
		OrderTime:      FormatOrderTime(now),
		CustomerName:   info.Name,
		Phone:          FormatPhone(info.Phone),
		Address:        info.Address,
		ItemsList:      itemsList(t),
		Subtotal:       t.Subtotal.StringFixed(0),
		DeliveryCharge: 0,
		Area:           info.Area,
		Comment:        info.Notes,
	}
}

// itemsList renders the human-readable enumerated block, one line per item:
//
//	1. Chicken Wings x2 (12 pcs) - ৳38
func itemsList(t Totals) string {
	var b strings.Builder
	for i, ln := range t.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s x%d", i+1, ln.Item.Name, ln.Qty)
		if ln.HasUnits {
			fmt.Fprintf(&b, " (%s %s)", ln.TotalUnits.String(), ln.Unit)
		}
		fmt.Fprintf(&b, " - ৳%s", ln.LineAmount.StringFixed(0))
	}
	return b.String()
}

// FormatOrderTime renders a timestamp in the shop's UTC+6 offset as
// "YYYY-MM-DD HH:MM:SS".
func FormatOrderTime(t time.Time) string {
	return t.In(bdZone).Format("2006-01-02 15:04:05")
}

// FormatPhone normalizes an accepted phone to the 11-digit 0-prefixed local
// form. Shapes the Validation Gate would have rejected pass through as-is.
func FormatPhone(phone string) string {
	p := strings.TrimSpace(phone)
	switch {
	case len(p) == 11 && strings.HasPrefix(p, "0"):
		return p
	case len(p) == 11 && strings.HasPrefix(p, "1"):
		return "0" + p[1:]
	case len(p) == 10:
		return "0" + p
	}
	return p
}

// ConfirmationText renders the order summary block the customer can paste
// into the shop's messenger channel.
func ConfirmationText(shopName, orderID string, t Totals, info CustomerInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ *%s ORDER*\n", shopName)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "📋 Order ID: %s\n\n", orderID)

	b.WriteString("👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Phone: +880%s\n", info.Phone)
	area := "Inside Dhaka"
	if info.Area == enum.AreaOutsideDhaka {
		area = "Outside Dhaka"
	}
	fmt.Fprintf(&b, "Area: %s\n", area)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	if info.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", info.Notes)
	}

	b.WriteString("\n🛒 *Order Items:*\n")
	for _, ln := range t.Lines {
		fmt.Fprintf(&b, "• %s x%d", ln.Item.Name, ln.Qty)
		if ln.HasUnits {
			fmt.Fprintf(&b, " (%s %s)", ln.TotalUnits.String(), ln.Unit)
		}
		fmt.Fprintf(&b, " - ৳%s\n", ln.LineAmount.StringFixed(0))
	}

	fmt.Fprintf(&b, "\n💰 Subtotal: ৳%s\n", t.Subtotal.StringFixed(0))
	b.WriteString("🚚 Delivery: To be confirmed\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━")
	return b.String()
}
