package shared

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ErrorKind classifies an expected, recoverable game failure.
// Front ends switch on the kind to pick a message; the core never retries.
type ErrorKind string

const (
	KindUnknownCommodity   ErrorKind = "UNKNOWN_COMMODITY"
	KindUnknownDestination ErrorKind = "UNKNOWN_DESTINATION"
	KindNoRoute            ErrorKind = "NO_ROUTE"
	KindInsufficientFunds  ErrorKind = "INSUFFICIENT_FUNDS"
	KindCargoFull          ErrorKind = "CARGO_FULL"
	KindInvalidQuantity    ErrorKind = "INVALID_QUANTITY"
	KindNothingToSell      ErrorKind = "NOTHING_TO_SELL"
	KindNotRegistered      ErrorKind = "NOT_REGISTERED"
	KindAlreadyRegistered  ErrorKind = "ALREADY_REGISTERED"
	KindAlreadyOwned       ErrorKind = "ALREADY_OWNED"
	KindLoanLimitReached   ErrorKind = "LOAN_LIMIT_REACHED"
	KindAmountTooHigh      ErrorKind = "AMOUNT_TOO_HIGH"
	KindAmountTooLow       ErrorKind = "AMOUNT_TOO_LOW"
	KindAlreadyBuilt       ErrorKind = "ALREADY_BUILT"
	KindInvalidInput       ErrorKind = "INVALID_INPUT"
)

// String returns the string representation of the ErrorKind
func (k ErrorKind) String() string {
	return string(k)
}

// GameError is a typed failure returned by every core operation.
// Two GameErrors match under errors.Is when their kinds are equal,
// so callers compare against the sentinels below.
type GameError struct {
	*DomainError
	Kind ErrorKind
}

// NewGameError creates a GameError of the given kind
func NewGameError(kind ErrorKind, format string, args ...interface{}) *GameError {
	return &GameError{
		DomainError: NewDomainError(fmt.Sprintf(format, args...)),
		Kind:        kind,
	}
}

// Is reports whether target is a GameError of the same kind
func (e *GameError) Is(target error) bool {
	var other *GameError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Sentinels for errors.Is comparisons
var (
	ErrUnknownCommodity   = NewGameError(KindUnknownCommodity, "unknown commodity")
	ErrUnknownDestination = NewGameError(KindUnknownDestination, "unknown destination")
	ErrNoRoute            = NewGameError(KindNoRoute, "no route")
	ErrInsufficientFunds  = NewGameError(KindInsufficientFunds, "insufficient funds")
	ErrCargoFull          = NewGameError(KindCargoFull, "cargo hold is full")
	ErrInvalidQuantity    = NewGameError(KindInvalidQuantity, "invalid quantity")
	ErrNothingToSell      = NewGameError(KindNothingToSell, "nothing to sell")
	ErrNotRegistered      = NewGameError(KindNotRegistered, "business not registered")
	ErrAlreadyRegistered  = NewGameError(KindAlreadyRegistered, "business already registered")
	ErrAlreadyOwned       = NewGameError(KindAlreadyOwned, "already owned")
	ErrLoanLimitReached   = NewGameError(KindLoanLimitReached, "loan limit reached")
	ErrAmountTooHigh      = NewGameError(KindAmountTooHigh, "amount too high")
	ErrAmountTooLow       = NewGameError(KindAmountTooLow, "amount too low")
	ErrAlreadyBuilt       = NewGameError(KindAlreadyBuilt, "factory already built")
	ErrInvalidInput       = NewGameError(KindInvalidInput, "invalid input")
)

// KindOf extracts the ErrorKind from err, looking through wrapping.
// Returns "" when err is not a GameError.
func KindOf(err error) ErrorKind {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Kind
	}
	return ""
}

// InsufficientFundsError carries the amounts involved in a rejected debit
type InsufficientFundsError struct {
	*GameError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		GameError: NewGameError(KindInsufficientFunds, "insufficient funds: need %d, have %d", required, available),
		Required:  required,
		Available: available,
	}
}

// Unwrap exposes the embedded GameError to errors.Is/As
func (e *InsufficientFundsError) Unwrap() error {
	return e.GameError
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
