package business

import (
	"github.com/shopspring/decimal"
)

// LoanTier is the credit line offered at a reputation level
type LoanTier struct {
	MinReputation int
	Ceiling       int
	Rate          decimal.Decimal
}

var loanTiers = []LoanTier{
	{MinReputation: 50, Ceiling: 1_000_000, Rate: decimal.RequireFromString("0.05")},
	{MinReputation: 20, Ceiling: 200_000, Rate: decimal.RequireFromString("0.10")},
	{MinReputation: 0, Ceiling: 50_000, Rate: decimal.RequireFromString("0.15")},
}

// TermsFor returns the loan tier for a reputation score. Ceilings never shrink as reputation grows.
func TermsFor(reputation int) LoanTier {
	for _, tier := range loanTiers {
		if reputation >= tier.MinReputation {
			return tier
		}
	}
	return loanTiers[len(loanTiers)-1]
}

// Loan is an issued credit line. Remaining is fixed at issuance and never repaid.
type Loan struct {
	principal   int
	rate        decimal.Decimal
	remaining   int
	issuedOnDay int
}

// NewLoan issues a loan with remaining = round(principal * (1 + rate))
func NewLoan(principal int, rate decimal.Decimal, issuedOnDay int) *Loan {
	remaining := decimal.NewFromInt(int64(principal)).
		Mul(decimal.NewFromInt(1).Add(rate)).
		Round(0).
		IntPart()
	return &Loan{
		principal:   principal,
		rate:        rate,
		remaining:   int(remaining),
		issuedOnDay: issuedOnDay,
	}
}

func (l *Loan) Principal() int {
	return l.principal
}

func (l *Loan) Rate() decimal.Decimal {
	return l.rate
}

func (l *Loan) Remaining() int {
	return l.remaining
}

func (l *Loan) IssuedOnDay() int {
	return l.issuedOnDay
}

// Interest is the total owed above principal
func (l *Loan) Interest() int {
	return l.remaining - l.principal
}
