package menu

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// BoxSizePerOrder marks items priced per whole order rather than per
// packaged unit.
const BoxSizePerOrder = "Per Order"

var boxSizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-zA-Z]+)`)

// UnitBreakdown is the structured form of a box-size descriptor.
type UnitBreakdown struct {
	Qty  decimal.Decimal
	Unit string
}

// ParseBoxSize extracts the first numeric+unit token pair from a box-size
// descriptor ("6 pcs", "1 kg/box"). Returns ok=false for the per-order
// sentinel and for text with no such pair; malformed input degrades to
// "no unit breakdown", never an error.
func ParseBoxSize(boxSize string) (UnitBreakdown, bool) {
	if boxSize == BoxSizePerOrder {
		return UnitBreakdown{}, false
	}
	m := boxSizePattern.FindStringSubmatch(boxSize)
	if m == nil {
		return UnitBreakdown{}, false
	}
	qty, err := decimal.NewFromString(m[1])
	if err != nil {
		return UnitBreakdown{}, false
	}
	return UnitBreakdown{Qty: qty, Unit: m[2]}, true
}

// FormatBoxSize normalizes a raw descriptor for display. Blank input maps to
// the per-order sentinel; text that already reads as per-box or per-order
// passes through; anything else gets a "/box" suffix. Applied once at menu
// load, not at render time.
func FormatBoxSize(boxSize string) string {
	if strings.TrimSpace(boxSize) == "" {
		return BoxSizePerOrder
	}
	lower := strings.ToLower(boxSize)
	if strings.Contains(lower, "/box") || strings.Contains(lower, "per box") || lower == "per order" {
		return boxSize
	}
	return boxSize + "/box"
}
