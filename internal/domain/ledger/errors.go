package ledger

import "fmt"

// ErrInvalidTransaction rejects a credit movement that cannot be recorded as given
type ErrInvalidTransaction struct {
	Field  string
	Reason string
}

func (e *ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("cannot record credit movement: %s %s", e.Field, e.Reason)
}

// ErrBalanceInvariantViolation means the captain's balance before and after a movement
// disagree with the amount moved.
type ErrBalanceInvariantViolation struct {
	BalanceBefore int
	Amount        int
	BalanceAfter  int
	Expected      int
}

func (e *ErrBalanceInvariantViolation) Error() string {
	return fmt.Sprintf("ledger out of balance: %d %+d makes %d credits, recorded %d",
		e.BalanceBefore, e.Amount, e.Expected, e.BalanceAfter)
}

// ErrTransactionNotFound is returned when a session has no transaction with the id
type ErrTransactionNotFound struct {
	ID        string
	SessionID string
}

func (e *ErrTransactionNotFound) Error() string {
	return fmt.Sprintf("session %s has no transaction %s", e.SessionID, e.ID)
}
