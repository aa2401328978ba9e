package budgety

import (
	"time"

	"github.com/shopspring/decimal"
)

// Saving is a savings goal. CurrentAmount is mutated directly by "add money"
// actions; it is not derived from transactions.
type Saving struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *Date           `json:"targetDate"` // nil means no deadline
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SavingUpdate is a partial patch for a saving goal. Nil fields are left
// unchanged; ClearTargetDate removes the deadline.
type SavingUpdate struct {
	Name            *string
	TargetAmount    *decimal.Decimal
	CurrentAmount   *decimal.Decimal
	TargetDate      *Date
	ClearTargetDate bool
	Description     *string
	Category        *string
}

func (s Saving) merge(u SavingUpdate) Saving {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.TargetAmount != nil {
		s.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		s.CurrentAmount = *u.CurrentAmount
	}
	if u.ClearTargetDate {
		s.TargetDate = nil
	} else if u.TargetDate != nil {
		target := *u.TargetDate
		s.TargetDate = &target
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	return s
}
