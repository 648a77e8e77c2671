package transform

import "errors"

var (
	// ErrShapeMismatch is returned when two transforms combined element-wise
	// do not have the same sequence of component kinds.
	ErrShapeMismatch = errors.New("transform: shape mismatch")

	// ErrNoComponent is returned when an indexed component does not exist.
	ErrNoComponent = errors.New("transform: no such component")

	// ErrInvalidDeltaTime is returned for a non-positive or NaN time step.
	ErrInvalidDeltaTime = errors.New("transform: invalid delta time")
)
