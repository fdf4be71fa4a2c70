package navigation

import "errors"

var (
	// ErrInvalidLocation is returned when location data violates its invariants
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidGalaxy is returned when the location set is inconsistent
	ErrInvalidGalaxy = errors.New("invalid galaxy")

	// ErrInvalidTravelMode is returned for an unrecognised travel mode name
	ErrInvalidTravelMode = errors.New("invalid travel mode")
)
