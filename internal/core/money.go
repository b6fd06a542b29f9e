// Package core holds the subscription domain model: the record type, its
// closed enumerations, money handling and the recurrence math.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a positive amount in the minor unit (cents) of its
// subscription's tagged currency. Calculations stay in cents; conversion
// to major units happens only at the formatting boundary.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidCost
	}
	return nil
}

// Major returns the amount in major units for display purposes only.
func (m Money) Major() float64 {
	return float64(m.Cents) / 100.0
}

// ParseDecimalToCents converts a decimal string to cents. Both dot and
// comma decimal separators are accepted; a third decimal digit rounds
// half-up. Zero and negative amounts are rejected.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidCost
	}

	whole, frac, _ := strings.Cut(s, ".")
	if strings.Contains(frac, ".") {
		return 0, ErrInvalidCost
	}
	if whole == "" {
		whole = "0"
	}
	for _, r := range whole + frac {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidCost
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidCost
	}
	const maxUnits = (1<<63 - 1) / 100
	if units > maxUnits {
		return 0, ErrInvalidCost
	}

	var cents int64
	if len(frac) > 0 {
		cents = int64(frac[0]-'0') * 10
	}
	if len(frac) > 1 {
		cents += int64(frac[1] - '0')
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	total := units*100 + cents
	if total <= 0 {
		return 0, ErrInvalidCost
	}
	return total, nil
}
