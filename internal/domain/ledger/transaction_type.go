package ledger

import "fmt"

// TransactionType names the game action that moved credits
type TransactionType string

const (
	TransactionTypeFuel                TransactionType = "FUEL"
	TransactionTypePurchaseCargo       TransactionType = "PURCHASE_CARGO"
	TransactionTypeSellCargo           TransactionType = "SELL_CARGO"
	TransactionTypeIncorporation       TransactionType = "INCORPORATION"
	TransactionTypeLicensePurchase     TransactionType = "LICENSE_PURCHASE"
	TransactionTypeLoanDisbursement    TransactionType = "LOAN_DISBURSEMENT"
	TransactionTypeFactoryConstruction TransactionType = "FACTORY_CONSTRUCTION"
	TransactionTypeFactoryIncome       TransactionType = "FACTORY_INCOME" // paid per day of travel
)

// transactionTypes fixes both the set of types and their reporting category
var transactionTypes = []struct {
	kind     TransactionType
	category Category
}{
	{TransactionTypeFuel, CategoryFuelCosts},
	{TransactionTypePurchaseCargo, CategoryTradingCosts},
	{TransactionTypeSellCargo, CategoryTradingRevenue},
	{TransactionTypeIncorporation, CategoryBusinessFees},
	{TransactionTypeLicensePurchase, CategoryBusinessFees},
	{TransactionTypeLoanDisbursement, CategoryFinancing},
	{TransactionTypeFactoryConstruction, CategoryFactoryInvestments},
	{TransactionTypeFactoryIncome, CategoryFactoryRevenue},
}

func AllTransactionTypes() []TransactionType {
	out := make([]TransactionType, len(transactionTypes))
	for i, entry := range transactionTypes {
		out[i] = entry.kind
	}
	return out
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	_, err := t.ToCategory()
	return err == nil
}

// ToCategory returns the report category t is booked under
func (t TransactionType) ToCategory() (Category, error) {
	for _, entry := range transactionTypes {
		if entry.kind == t {
			return entry.category, nil
		}
	}
	return "", fmt.Errorf("no ledger category for transaction type %q", string(t))
}

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}
