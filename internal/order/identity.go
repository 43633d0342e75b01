package order

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const idLength = 10

// GenerateID derives the 10-character order code from the canonical order
// signature. Deterministic: identical state always yields the identical
// code, and any change to the cart, customer fields, or session makes a
// collision statistically unlikely — but not impossible. The underlying
// hash is not cryptographic; if real uniqueness guarantees are ever needed,
// the upgrade path is a random UUID with a short human-friendly alias.
func GenerateID(selection map[int]Line, info CustomerInfo, seed string, ts time.Time) string {
	return EncodeID(Hash(Signature(selection, info, seed, ts)), idLength)
}

// Signature builds the canonical string an order ID hashes, in fixed order:
// session seed, order timestamp in epoch millis, the selection sorted by
// item id as "id:qty;", then the trimmed lower-cased name, trimmed phone,
// area code, and trimmed lower-cased address. The customer fields carry no
// separators between them, matching the reference behavior (see DESIGN.md).
func Signature(selection map[int]Line, info CustomerInfo, seed string, ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(seed)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(ts.UnixMilli(), 10))
	b.WriteByte('|')

	ids := make([]int, 0, len(selection))
	for id := range selection {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%d;", id, selection[id].Qty)
	}

	b.WriteString(strings.ToLower(strings.TrimSpace(info.Name)))
	b.WriteString(strings.TrimSpace(info.Phone))
	b.WriteString(info.Area)
	b.WriteString(strings.ToLower(strings.TrimSpace(info.Address)))
	return b.String()
}
