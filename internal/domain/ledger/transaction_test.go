package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

func validParams() ledger.TransactionParams {
	return ledger.TransactionParams{
		SessionID:     shared.NewSessionID(),
		Timestamp:     time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC),
		Day:           2,
		Type:          ledger.TransactionTypeFuel,
		Amount:        -25,
		BalanceBefore: 1000,
		BalanceAfter:  975,
		Description:   "Fuel to europa_station",
	}
}

func TestNewTransaction_DerivesCategory(t *testing.T) {
	tx, err := ledger.NewTransaction(validParams())

	require.NoError(t, err)
	assert.False(t, tx.ID().IsZero())
	assert.Equal(t, ledger.CategoryFuelCosts, tx.Category())
	assert.True(t, tx.IsExpense())
	assert.Equal(t, 2, tx.Day())
}

func TestNewTransaction_BalanceInvariant(t *testing.T) {
	p := validParams()
	p.BalanceAfter = 980

	_, err := ledger.NewTransaction(p)

	var violation *ledger.ErrBalanceInvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, 975, violation.Expected)
}

func TestNewTransaction_RejectsInvalidFields(t *testing.T) {
	cases := map[string]func(p *ledger.TransactionParams){
		"zero amount":     func(p *ledger.TransactionParams) { p.Amount = 0; p.BalanceAfter = p.BalanceBefore },
		"empty session":   func(p *ledger.TransactionParams) { p.SessionID = shared.SessionID{} },
		"unknown type":    func(p *ledger.TransactionParams) { p.Type = "PIRACY" },
		"negative credit": func(p *ledger.TransactionParams) { p.BalanceBefore = 10; p.BalanceAfter = -15 },
		"no timestamp":    func(p *ledger.TransactionParams) { p.Timestamp = time.Time{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validParams()
			mutate(&p)

			_, err := ledger.NewTransaction(p)

			assert.Error(t, err)
		})
	}
}

func TestTransactionType_EveryTypeHasCategory(t *testing.T) {
	for _, tt := range ledger.AllTransactionTypes() {
		category, err := tt.ToCategory()
		require.NoError(t, err, tt)
		assert.True(t, category.IsValid(), tt)
	}

	_, err := ledger.ParseTransactionType("REFUEL")
	assert.Error(t, err)
}

func TestCategory_IncomeClassification(t *testing.T) {
	assert.True(t, ledger.CategoryFactoryRevenue.IsIncome())
	assert.True(t, ledger.CategoryFinancing.IsIncome())
	assert.True(t, ledger.CategoryBusinessFees.IsExpense())
	assert.False(t, ledger.Category("TAXES").IsExpense())

	all := ledger.AllCategories()
	assert.Len(t, all, 7)
	assert.Equal(t, ledger.CategoryTradingRevenue, all[0])

	_, err := ledger.ParseCategory("TAXES")
	assert.Error(t, err)
}
