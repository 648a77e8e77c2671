package geom

import "math"

// DefaultPrecision is the number of decimal places used by equality,
// containment and boundary tests when no precision is given.
const DefaultPrecision = 8

// Round rounds v half away from zero to precision decimal places.
// Non-finite values are returned unchanged.
func Round(v float64, precision int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	scale := math.Pow(10, float64(precision))
	r := math.Round(v*scale) / scale
	if r == 0 {
		// Normalize -0 so rounded values compare and print consistently.
		return 0
	}
	return r
}

// RoundEqual reports whether a and b are equal at precision decimal places.
func RoundEqual(a, b float64, precision int) bool {
	return Round(a, precision) == Round(b, precision)
}

// RoundZero reports whether v rounds to zero at precision decimal places.
func RoundZero(v float64, precision int) bool {
	return Round(v, precision) == 0
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
