package ledger

import (
	"fmt"
	"maps"
	"time"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// TransactionParams describes one credit movement as the game reports it
type TransactionParams struct {
	SessionID         shared.SessionID
	Timestamp         time.Time // wall clock, for ordering within a day
	Day               int       // game day the movement happened on
	Type              TransactionType
	Amount            int // signed: income positive, spending negative
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	Metadata          map[string]interface{}
	RelatedEntityType string // "commodity", "location", "business", "license", "loan" or "factory"
	RelatedEntityID   string
}

// Transaction is an immutable ledger entry. The category is derived from the
// type when the entry is created.
type Transaction struct {
	id       TransactionID
	category Category
	p        TransactionParams
}

// NewTransaction checks p and assigns a fresh id
func NewTransaction(p TransactionParams) (*Transaction, error) {
	if p.SessionID.IsZero() {
		return nil, &ErrInvalidTransaction{Field: "session_id", Reason: "is missing"}
	}
	category, err := p.Type.ToCategory()
	if err != nil {
		return nil, &ErrInvalidTransaction{Field: "transaction_type", Reason: err.Error()}
	}

	p.Metadata = maps.Clone(p.Metadata)
	t := &Transaction{id: NewTransactionID(), category: category, p: p}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a stored entry without validating it again
func ReconstructTransaction(id TransactionID, category Category, p TransactionParams) *Transaction {
	return &Transaction{id: id, category: category, p: p}
}

// Validate enforces the ledger rules: a non-zero amount on a non-negative day, a
// balance that moves by exactly the amount and never below zero, and a timestamp.
func (t *Transaction) Validate() error {
	p := t.p
	switch {
	case p.Amount == 0:
		return &ErrInvalidTransaction{Field: "amount", Reason: "must not be zero"}
	case p.Day < 0:
		return &ErrInvalidTransaction{Field: "day", Reason: fmt.Sprintf("is negative (%d)", p.Day)}
	case p.BalanceBefore+p.Amount != p.BalanceAfter:
		return &ErrBalanceInvariantViolation{
			BalanceBefore: p.BalanceBefore,
			Amount:        p.Amount,
			BalanceAfter:  p.BalanceAfter,
			Expected:      p.BalanceBefore + p.Amount,
		}
	case p.BalanceAfter < 0:
		return &ErrInvalidTransaction{Field: "balance_after", Reason: "leaves the captain in debt to the ledger"}
	case p.Timestamp.IsZero():
		return &ErrInvalidTransaction{Field: "timestamp", Reason: "is missing"}
	}
	return nil
}

func (t *Transaction) ID() TransactionID                { return t.id }
func (t *Transaction) Category() Category               { return t.category }
func (t *Transaction) SessionID() shared.SessionID      { return t.p.SessionID }
func (t *Transaction) Timestamp() time.Time             { return t.p.Timestamp }
func (t *Transaction) Day() int                         { return t.p.Day }
func (t *Transaction) TransactionType() TransactionType { return t.p.Type }
func (t *Transaction) Amount() int                      { return t.p.Amount }
func (t *Transaction) BalanceBefore() int               { return t.p.BalanceBefore }
func (t *Transaction) BalanceAfter() int                { return t.p.BalanceAfter }
func (t *Transaction) Description() string              { return t.p.Description }
func (t *Transaction) RelatedEntityType() string        { return t.p.RelatedEntityType }
func (t *Transaction) RelatedEntityID() string          { return t.p.RelatedEntityID }

// Metadata returns a copy; callers cannot change a recorded entry
func (t *Transaction) Metadata() map[string]interface{} {
	return maps.Clone(t.p.Metadata)
}

func (t *Transaction) IsIncome() bool  { return t.p.Amount > 0 }
func (t *Transaction) IsExpense() bool { return t.p.Amount < 0 }

func (t *Transaction) String() string {
	return fmt.Sprintf("%s day %d %s %+d (%d -> %d)",
		t.id, t.p.Day, t.p.Type, t.p.Amount, t.p.BalanceBefore, t.p.BalanceAfter)
}
