package geom

import "math"

// Polynomial root solvers.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust:
// - If a is zero or nearly zero, treats as linear equation
// - If all coefficients are zero, returns a single 0.0
// - Handles edge cases with NaN and Inf gracefully
//
// The kinematics kernel uses it to find the time at which a decelerating
// body has covered a given distance.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveQuadraticLinear(b, c)
	}
	return solveQuadraticNormal(sc0, sc1)
}

// solveQuadraticNormal handles the normal quadratic case with valid scaled coefficients.
func solveQuadraticNormal(sc0, sc1 float64) []float64 {
	arg := sc1*sc1 - 4.0*sc0

	if !isFinite(arg) {
		return solveQuadraticOverflow(sc0, sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoids cancellation between -b and sqrt(disc).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticOverflow handles discriminant overflow.
func solveQuadraticOverflow(sc0, sc1 float64) []float64 {
	root1 := -sc1
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticLinear handles the case when a is zero or very small.
func solveQuadraticLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SmallestNonNegativeRoot returns the smallest root of ax^2 + bx + c = 0
// that is >= 0 after rounding to precision. ok is false when there is none.
func SmallestNonNegativeRoot(a, b, c float64, precision int) (root float64, ok bool) {
	for _, r := range SolveQuadratic(a, b, c) {
		if Round(r, precision) >= 0 {
			return math.Max(r, 0), true
		}
	}
	return 0, false
}
