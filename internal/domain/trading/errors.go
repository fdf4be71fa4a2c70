package trading

import "errors"

var (
	// ErrInvalidCargoCapacity indicates the cargo capacity is not positive
	ErrInvalidCargoCapacity = errors.New("cargo capacity must be positive")

	// ErrInvalidMarginThreshold indicates the minimum margin is negative
	ErrInvalidMarginThreshold = errors.New("minimum margin cannot be negative")
)
