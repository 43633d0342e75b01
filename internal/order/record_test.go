package order

import (
	"strings"
	"testing"
	"time"

	"github.com/sayemas-kitchen/api/internal/enum"
)

func TestBuildRecord(t *testing.T) {
	totals := ComputeTotals(map[int]Line{
		1: {Item: menuItem(1, "Chicken Wings", "18.99", "6 pcs/box"), Qty: 2},
		2: {Item: menuItem(2, "Garden Salad", "8.00", "Per Order"), Qty: 1},
	})
	info := CustomerInfo{
		Name:    "Alice Rahman",
		Phone:   "1712345678",
		Area:    enum.AreaInsideDhaka,
		Address: "House 5, Dhanmondi",
		Notes:   "less spicy",
	}
	// 18:30 UTC is 00:30 the next day at the shop's UTC+6.
	now := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	rec := BuildRecord("ABCDEFGH23", totals, info, now)

	if rec.OrderID != "ABCDEFGH23" {
		t.Errorf("orderId = %q", rec.OrderID)
	}
	if rec.OrderTime != "2025-06-02 00:30:00" {
		t.Errorf("orderTime = %q, want %q", rec.OrderTime, "2025-06-02 00:30:00")
	}
	if rec.Phone != "01712345678" {
		t.Errorf("phone = %q, want normalized %q", rec.Phone, "01712345678")
	}
	// 18.99*2 + 8.00 = 45.98, display-rounded to whole units.
	if rec.Subtotal != "46" {
		t.Errorf("subtotal = %q, want %q", rec.Subtotal, "46")
	}
	if rec.DeliveryCharge != 0 {
		t.Errorf("deliveryCharge = %d, want 0", rec.DeliveryCharge)
	}
	if rec.Area != enum.AreaInsideDhaka || rec.Comment != "less spicy" {
		t.Errorf("area/comment = %q/%q", rec.Area, rec.Comment)
	}

	wantItems := "1. Chicken Wings x2 (12 pcs) - ৳38\n2. Garden Salad x1 - ৳8"
	if rec.ItemsList != wantItems {
		t.Errorf("itemsList = %q, want %q", rec.ItemsList, wantItems)
	}
}

func TestFormatOrderTimeIgnoresServerZone(t *testing.T) {
	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inNY := instant.In(time.FixedZone("EST", -5*3600))

	if FormatOrderTime(instant) != FormatOrderTime(inNY) {
		t.Error("order time depends on the server's zone")
	}
	if got := FormatOrderTime(instant); got != "2025-06-01 18:00:00" {
		t.Errorf("FormatOrderTime = %q, want %q", got, "2025-06-01 18:00:00")
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"01712345678", "01712345678"},
		{"11712345678", "01712345678"},
		{"1712345678", "01712345678"},
		{" 01712345678 ", "01712345678"},
		{"garbage", "garbage"}, // validation gate keeps this out in practice
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.input); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConfirmationText(t *testing.T) {
	totals := ComputeTotals(map[int]Line{
		1: {Item: menuItem(1, "Wings", "18.99", "6 pcs/box"), Qty: 2},
	})
	info := CustomerInfo{
		Name:    "Alice",
		Phone:   "01712345678",
		Area:    enum.AreaOutsideDhaka,
		Address: "Chattogram",
	}

	text := ConfirmationText("TEST KITCHEN", "ABCDEFGH23", totals, info)

	for _, want := range []string{
		"*TEST KITCHEN ORDER*",
		"Order ID: ABCDEFGH23",
		"Phone: +88001712345678",
		"Area: Outside Dhaka",
		"• Wings x2 (12 pcs) - ৳38",
		"Subtotal: ৳38",
		"Delivery: To be confirmed",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("confirmation text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Notes:") {
		t.Error("empty notes rendered a Notes line")
	}
}
