package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit records how a theme author expressed a length.
type Unit int

const (
	UnitNone Unit = iota // bare numbers: ratios, or pixels for lengths
	UnitPX
	UnitPT
)

// One typographic point is 1/72 inch; logical pixels follow the usual
// 96dpi convention.
const PtToPx = 96.0 / 72.0

// UnitToString returns the short suffix for a Unit.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Px resolves the length to logical pixels. Unitless values are taken as
// pixels already.
func (l Length) Px() float64 {
	if l.Unit == UnitPT {
		return l.Value * PtToPx
	}
	return l.Value
}

// ParseLength parses a theme length such as "14", "14px" or "10.5pt".
func ParseLength(s string) (Length, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	if v == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	unit := UnitNone
	num := v
	switch {
	case strings.HasSuffix(v, "px"):
		unit = UnitPX
		num = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		unit = UnitPT
		num = strings.TrimSuffix(v, "pt")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Length{Value: f, Unit: unit}, nil
}
