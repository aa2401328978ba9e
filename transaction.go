package budgety

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType carries the sign of a transaction: income adds to a wallet,
// expense subtracts from it. Amount itself is a magnitude.
type TransactionType int

const (
	Expense TransactionType = iota
	Income
)

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return Expense, fmt.Errorf("unknown transaction type %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (t TransactionType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction categories offered by the entry forms. Category remains a
// free-form string; these are only suggestions.
var (
	IncomeCategories = []string{
		"Salary", "Freelance", "Business", "Investment", "Gift", "Other Income",
	}
	ExpenseCategories = []string{
		"Food & Dining", "Transportation", "Shopping", "Entertainment",
		"Bills & Utilities", "Healthcare", "Education", "Travel", "Other Expense",
	}
)

// Transaction is a single income or expense event attributed to one wallet.
//
// WalletID is a soft foreign key: it is not validated against the wallet
// collection at write time, and it is immutable after creation.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	WalletID    string          `json:"walletId"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// signedAmount is the delta this transaction contributes to its wallet
// balance: +amount for income, -amount for expense.
func (t Transaction) signedAmount() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionUpdate is a partial patch for a transaction. Nil fields are left
// unchanged. There is deliberately no WalletID field: moving a transaction
// between wallets is not a defined operation.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Type        *TransactionType
	Category    *string
	Description *string
	Date        *Date
}

// touchesBalance reports whether applying the patch requires the wallet
// balance to be recomputed.
func (u TransactionUpdate) touchesBalance() bool {
	return u.Amount != nil || u.Type != nil
}

func (t Transaction) merge(u TransactionUpdate) Transaction {
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	return t
}
