// Package quantity handles the human-readable quantity strings used across
// the dashboard, e.g. "450 kg". A quantity is a numeric magnitude plus a
// free-form unit, with a single parse/format pair so aggregation never has
// to scrape numbers out of text ad hoc.
package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a magnitude with a unit, e.g. {450, "kg"}.
type Quantity struct {
	Value float64
	Unit  string
}

// Parse reads a quantity of the form "<number>" or "<number> <unit>".
// The numeric part must be a leading decimal literal.
func Parse(s string) (Quantity, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Quantity{}, fmt.Errorf("empty quantity")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity{Value: v, Unit: strings.Join(fields[1:], " ")}, nil
}

// Magnitude returns the numeric part of a quantity string, or 0 when it
// does not parse. Used by the statistics aggregators, which must coerce
// malformed input rather than fail a whole stats request.
func Magnitude(s string) float64 {
	q, err := Parse(s)
	if err != nil {
		return 0
	}
	return q.Value
}

// String formats the quantity back into its wire form.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'f', -1, 64)
	if q.Unit == "" {
		return v
	}
	return v + " " + q.Unit
}
