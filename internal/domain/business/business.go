package business

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

const (
	// DefaultIncorporationCost is the fee to register a business
	DefaultIncorporationCost = 5000
	// DefaultMaxLoans caps concurrent loans
	DefaultMaxLoans = 3
	// DefaultMinLoan is the smallest loan issued
	DefaultMinLoan = 1000
	// StartingReputation is set on incorporation
	StartingReputation = 10
)

// Purse is the credit balance business operations draw on
type Purse interface {
	Credits() int
	Debit(amount int) error
	Credit(amount int) error
}

// Policy holds the tunable business rules
type Policy struct {
	IncorporationCost int
	MaxLoans          int
	MinLoan           int
}

// DefaultPolicy returns the standard business rules
func DefaultPolicy() Policy {
	return Policy{
		IncorporationCost: DefaultIncorporationCost,
		MaxLoans:          DefaultMaxLoans,
		MinLoan:           DefaultMinLoan,
	}
}

// Business is the captain's company. It moves one way from unregistered to registered;
// reputation only increases.
type Business struct {
	policy     Policy
	registered bool
	name       string
	reputation int
	licenses   map[string]bool
	loans      []*Loan
}

// NewBusiness creates an unregistered business under policy
func NewBusiness(policy Policy) *Business {
	return &Business{
		policy:   policy,
		licenses: make(map[string]bool),
	}
}

func (b *Business) IsRegistered() bool {
	return b.registered
}

func (b *Business) Name() string {
	return b.name
}

func (b *Business) Reputation() int {
	return b.reputation
}

func (b *Business) Policy() Policy {
	return b.policy
}

// Standing returns the reputation band
func (b *Business) Standing() Standing {
	return StandingFor(b.reputation)
}

// LoanTerms returns the tier currently offered
func (b *Business) LoanTerms() LoanTier {
	return TermsFor(b.reputation)
}

// HasLicense reports whether the license is owned
func (b *Business) HasLicense(licenseID string) bool {
	return b.licenses[licenseID]
}

// Licenses returns owned license ids sorted
func (b *Business) Licenses() []string {
	ids := make([]string, 0, len(b.licenses))
	for id := range b.licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Loans returns a copy of the active loans
func (b *Business) Loans() []*Loan {
	out := make([]*Loan, len(b.loans))
	copy(out, b.loans)
	return out
}

// TotalDebt sums the remaining balance of every loan
func (b *Business) TotalDebt() int {
	total := 0
	for _, l := range b.loans {
		total += l.remaining
	}
	return total
}

// AddReputation raises reputation; negative deltas are ignored
func (b *Business) AddReputation(delta int) {
	if delta > 0 {
		b.reputation += delta
	}
}

// RequireRegistered fails with NotRegistered before incorporation
func (b *Business) RequireRegistered() error {
	if !b.registered {
		return shared.NewGameError(shared.KindNotRegistered, "you must incorporate your business first")
	}
	return nil
}

// Incorporate registers the business, charging the incorporation fee.
// An empty name defaults to "<owner> Trading Corp".
func (b *Business) Incorporate(purse Purse, name, owner string) error {
	if b.registered {
		return shared.NewGameError(shared.KindAlreadyRegistered, "%s is already registered", b.name)
	}
	if purse.Credits() < b.policy.IncorporationCost {
		return shared.NewInsufficientFundsError(b.policy.IncorporationCost, purse.Credits())
	}
	if err := purse.Debit(b.policy.IncorporationCost); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%s Trading Corp", owner)
	}
	b.registered = true
	b.name = name
	b.reputation = StartingReputation
	return nil
}

// PurchaseLicense buys a license from the catalog.
// Failure order: NotRegistered, InvalidInput for an unknown license, AlreadyOwned, InsufficientFunds.
func (b *Business) PurchaseLicense(purse Purse, licenseID string) (License, error) {
	if err := b.RequireRegistered(); err != nil {
		return License{}, err
	}
	license, ok := LookupLicense(licenseID)
	if !ok {
		return License{}, shared.NewGameError(shared.KindInvalidInput, "unknown license %q", licenseID)
	}
	if b.licenses[license.ID] {
		return License{}, shared.NewGameError(shared.KindAlreadyOwned, "you already hold a %s", license.Name)
	}
	if purse.Credits() < license.Cost {
		return License{}, shared.NewInsufficientFundsError(license.Cost, purse.Credits())
	}
	if err := purse.Debit(license.Cost); err != nil {
		return License{}, err
	}

	b.licenses[license.ID] = true
	b.reputation += LicenseReputationBonus
	return license, nil
}

// ApplyLoan issues a loan on the current reputation tier and credits the principal.
// Failure order: NotRegistered, LoanLimitReached, AmountTooHigh, AmountTooLow.
func (b *Business) ApplyLoan(purse Purse, amount, day int) (*Loan, error) {
	if err := b.RequireRegistered(); err != nil {
		return nil, err
	}
	if len(b.loans) >= b.policy.MaxLoans {
		return nil, shared.NewGameError(shared.KindLoanLimitReached, "you already hold the maximum of %d loans", b.policy.MaxLoans)
	}
	terms := b.LoanTerms()
	if amount > terms.Ceiling {
		return nil, shared.NewGameError(shared.KindAmountTooHigh, "loan amount too high, maximum is %d", terms.Ceiling)
	}
	if amount < b.policy.MinLoan {
		return nil, shared.NewGameError(shared.KindAmountTooLow, "minimum loan amount is %d", b.policy.MinLoan)
	}
	if err := purse.Credit(amount); err != nil {
		return nil, err
	}

	loan := NewLoan(amount, terms.Rate, day)
	b.loans = append(b.loans, loan)
	return loan, nil
}
