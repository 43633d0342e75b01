package order

import (
	"errors"
	"strings"

	"github.com/sayemas-kitchen/api/internal/enum"
)

// CustomerInfo is the delivery form state. Everything is free text except
// Area, which must be one of the enum area codes once set.
type CustomerInfo struct {
	Name    string
	Phone   string
	Area    string
	Address string
	Notes   string
}

// Errors returned by Validate.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidPhone    = errors.New("phone must be 10 or 11 digits")
	ErrAreaRequired    = errors.New("delivery area must be selected")
	ErrAddressRequired = errors.New("address is required")
)

// Validate checks customer info against the gate rules and returns the
// first violation. All-or-nothing: any failure blocks order ID generation
// and submission entirely.
func Validate(info CustomerInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return ErrNameRequired
	}
	if !phoneValid(info.Phone) {
		return ErrInvalidPhone
	}
	if info.Area != enum.AreaInsideDhaka && info.Area != enum.AreaOutsideDhaka {
		return ErrAreaRequired
	}
	if strings.TrimSpace(info.Address) == "" {
		return ErrAddressRequired
	}
	return nil
}

// IsValid reports whether info passes the gate.
func IsValid(info CustomerInfo) bool {
	return Validate(info) == nil
}

// phoneValid accepts exactly 10 digits (leading 0 omitted) or 11 digits
// (leading 0 included), ASCII digits only. Both forms pass as typed; no
// normalization happens before validation.
func phoneValid(phone string) bool {
	p := strings.TrimSpace(phone)
	if len(p) != 10 && len(p) != 11 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}
