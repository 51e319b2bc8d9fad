package calc

import (
	"math"
	"strconv"
)

// ErrorDisplay is the single user-visible marker for a failed calculation.
const ErrorDisplay = "Error"

const (
	maxDisplayWidth = 16
	roundScale      = 1e12 // 12 decimal digits of display precision
	sciPrecision    = 10
)

// Format renders a result for display. Non-finite values become the Error
// marker. Finite values are rounded to 12 decimal digits to hide binary
// float noise (0.1+0.2 renders as 0.3), then printed in plain decimal,
// falling back to scientific notation when the plain form exceeds the
// display width.
func Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrorDisplay
	}
	// Skip rounding when the scaled value overflows; it would turn large
	// finite results into Error.
	if scaled := x * roundScale; !math.IsInf(scaled, 0) {
		x = math.Round(scaled) / roundScale
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if len(s) > maxDisplayWidth {
		s = strconv.FormatFloat(x, 'e', sciPrecision, 64)
	}
	return s
}
