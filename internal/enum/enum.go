package enum

// ── Delivery areas (the form offers exactly two) ──

const (
	AreaInsideDhaka  = "inside"
	AreaOutsideDhaka = "outside"
)

// ── Staff feed event types ──

const (
	EventOrderPlaced = "order.placed"
)
