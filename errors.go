package swcanvas

import "errors"

// Package-level errors. All of them indicate programmer error in the
// calling layer and are raised synchronously by the offending call;
// none are transient or retryable. Out-of-range pixel coordinates are
// deliberately not errors: reads return the zero value and writes are
// ignored, so rasterizers can probe freely near buffer edges.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("swcanvas: invalid dimensions")

	// ErrDimensionMismatch is returned by binary operations (AND, copy,
	// intersect) when the two operands differ in width or height.
	ErrDimensionMismatch = errors.New("swcanvas: dimension mismatch")

	// ErrInvalidComponent is returned when a color component is outside [0, 255].
	ErrInvalidComponent = errors.New("swcanvas: color component out of range")

	// ErrInvalidFactor is returned when an alpha factor is outside [0, 1].
	ErrInvalidFactor = errors.New("swcanvas: alpha factor out of range")

	// ErrNotInvertible is returned when a transformation matrix has no inverse.
	ErrNotInvertible = errors.New("swcanvas: matrix is not invertible")
)
