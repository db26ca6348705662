package tensor

import "errors"

// Sentinel errors returned by array construction, slicing and algebra.
// Operations wrap them with context; match with errors.Is.
var (
	// ErrArityMismatch is returned when the number of slice arguments differs
	// from the buffer rank.
	ErrArityMismatch = errors.New("ndarray: slice argument count does not match buffer rank")

	// ErrInvalidRange is returned for a range whose end lies before its start.
	ErrInvalidRange = errors.New("ndarray: range end must be greater than or equal to start")

	// ErrShapeMismatch is returned when operands of an algebraic operation,
	// a contraction or a comparison have incompatible shapes.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrIndexOutOfRange is returned when an index, range bound or axis lies
	// outside the addressed extent.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadShape is returned when a buffer is requested with an empty shape
	// or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")
)
