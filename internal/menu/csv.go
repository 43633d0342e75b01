package menu

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyMenu means the sheet parsed but yielded no usable rows.
var ErrEmptyMenu = errors.New("no menu items found")

// ParseMenuCSV parses the published sheet into menu items. Column order is
// item, category, box size, price; the header row is skipped. Item ids are
// physical data-row numbers, so a skipped malformed row still consumes its
// id — ids stay stable against what the sheet owner sees.
func ParseMenuCSV(data []byte) ([]Item, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read menu csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyMenu
	}

	var items []Item
	for i, rec := range records[1:] {
		if len(rec) < 4 {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			continue
		}
		items = append(items, Item{
			ID:       i + 1,
			Name:     strings.TrimSpace(rec[0]),
			Category: strings.TrimSpace(rec[1]),
			Price:    price,
			BoxSize:  FormatBoxSize(strings.TrimSpace(rec[2])),
		})
	}
	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}
	return items, nil
}
