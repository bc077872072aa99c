package ndcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ndcube package.
var (
	// Construction errors
	ErrInvalidDimension = errors.New("ndcube: dimension must be at least 3")

	// Rotation parsing/validation errors
	ErrMalformedRotation = errors.New("ndcube: malformed rotation")

	// Solver errors
	ErrStepLimit = errors.New("ndcube: solve step limit reached")
)

// DimensionError reports a rejected cube dimension.
type DimensionError struct {
	Dims int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("ndcube: invalid dimension %d (minimum is %d)", e.Dims, MinDims)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }

// RotationError reports a rotation that failed validation, carrying the raw
// values as supplied by the caller.
type RotationError struct {
	Axis   int
	From   int
	To     int
	Side   int
	Reason string
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("ndcube: malformed rotation (axis=%d from=%d to=%d side=%d): %s",
		e.Axis, e.From, e.To, e.Side, e.Reason)
}

func (e *RotationError) Unwrap() error { return ErrMalformedRotation }
