package market

import "errors"

var (
	// ErrInvalidCommodityID is returned when a commodity id is empty
	ErrInvalidCommodityID = errors.New("invalid commodity id")

	// ErrInvalidCommodity is returned when commodity data violates its invariants
	ErrInvalidCommodity = errors.New("invalid commodity")

	// ErrInvalidLocationID is returned when a price record has no location
	ErrInvalidLocationID = errors.New("invalid location id")

	// ErrInvalidPrice is returned when a price is below 1
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidSessionID is returned when a price record has no session
	ErrInvalidSessionID = errors.New("invalid session id")
)
