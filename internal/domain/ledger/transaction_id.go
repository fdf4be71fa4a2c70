package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionID identifies one ledger entry. The zero value means "not assigned".
type TransactionID struct {
	value string
}

func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.NewString()}
}

// ParseTransactionID accepts only UUIDs, the form NewTransactionID produces
func ParseTransactionID(id string) (TransactionID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return TransactionID{}, fmt.Errorf("transaction id %q: %w", id, err)
	}
	return TransactionID{value: parsed.String()}, nil
}

// MustParseTransactionID is for ids read back from storage, which were valid when written
func MustParseTransactionID(id string) TransactionID {
	tid, err := ParseTransactionID(id)
	if err != nil {
		panic(err)
	}
	return tid
}

func (t TransactionID) String() string { return t.value }

func (t TransactionID) Equals(other TransactionID) bool { return t.value == other.value }

func (t TransactionID) IsZero() bool { return t.value == "" }
