package budgety

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for a category over a recurring period.
//
// A budget stores no relation to transactions: matching happens at read time
// by category and date range (see BudgetProgress).
type Budget struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    Period          `json:"period"`
	StartDate Date            `json:"startDate"`
	EndDate   *Date           `json:"endDate"` // nil means open-ended
	CreatedAt time.Time       `json:"createdAt"`
}

// BudgetUpdate is a partial patch for a budget. Nil fields are left
// unchanged; ClearEndDate makes the budget open-ended.
type BudgetUpdate struct {
	Name         *string
	Category     *string
	Amount       *decimal.Decimal
	Period       *Period
	StartDate    *Date
	EndDate      *Date
	ClearEndDate bool
}

func (b Budget) merge(u BudgetUpdate) Budget {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.Amount != nil {
		b.Amount = *u.Amount
	}
	if u.Period != nil {
		b.Period = *u.Period
	}
	if u.StartDate != nil {
		b.StartDate = *u.StartDate
	}
	if u.ClearEndDate {
		b.EndDate = nil
	} else if u.EndDate != nil {
		end := *u.EndDate
		b.EndDate = &end
	}
	return b
}
