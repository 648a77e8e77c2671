package geom

import "errors"

// Sentinel errors for geom package.
var (
	// ErrDegenerateLine is returned when a line's two points coincide.
	ErrDegenerateLine = errors.New("geom: line points coincide")

	// ErrInvalidEnds is returned when a line's ends flag is not 0, 1 or 2.
	ErrInvalidEnds = errors.New("geom: line ends must be 0, 1 or 2")

	// ErrDegeneratePlane is returned for a zero normal or collinear points.
	ErrDegeneratePlane = errors.New("geom: plane normal is zero")

	// ErrInvalidState is returned when serialized input cannot be parsed.
	ErrInvalidState = errors.New("geom: invalid state")
)
