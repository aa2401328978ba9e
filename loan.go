package budgety

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LoanType distinguishes money lent to someone from money borrowed.
type LoanType int

const (
	Lent LoanType = iota
	Borrowed
)

func (t LoanType) String() string {
	switch t {
	case Lent:
		return "lent"
	case Borrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}

// ParseLoanType parses a string into a LoanType.
func ParseLoanType(s string) (LoanType, error) {
	switch s {
	case "lent":
		return Lent, nil
	case "borrowed":
		return Borrowed, nil
	default:
		return Lent, fmt.Errorf("unknown loan type %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (t LoanType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *LoanType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLoanType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LoanStatus tracks the lifecycle of a loan.
type LoanStatus int

const (
	Active LoanStatus = iota
	Paid
	Overdue
)

func (s LoanStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Paid:
		return "paid"
	case Overdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// ParseLoanStatus parses a string into a LoanStatus.
func ParseLoanStatus(str string) (LoanStatus, error) {
	switch str {
	case "active":
		return Active, nil
	case "paid":
		return Paid, nil
	case "overdue":
		return Overdue, nil
	default:
		return Active, fmt.Errorf("unknown loan status %q", str)
	}
}

// MarshalJSON implements json.Marshaler.
func (s LoanStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *LoanStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseLoanStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Loan is money lent to or borrowed from a person.
//
// PaidAmount only grows, through RecordLoanPayment.
type Loan struct {
	ID           string          `json:"id"`
	Type         LoanType        `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	PersonName   string          `json:"personName"`
	Description  string          `json:"description"`
	DueDate      *Date           `json:"dueDate"` // nil means no due date
	InterestRate decimal.Decimal `json:"interestRate"`
	Status       LoanStatus      `json:"status"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// LoanUpdate is a partial patch for a loan. Nil fields are left unchanged;
// ClearDueDate removes the due date.
type LoanUpdate struct {
	Type         *LoanType
	Amount       *decimal.Decimal
	PersonName   *string
	Description  *string
	DueDate      *Date
	ClearDueDate bool
	InterestRate *decimal.Decimal
	Status       *LoanStatus
}

func (l Loan) merge(u LoanUpdate) Loan {
	if u.Type != nil {
		l.Type = *u.Type
	}
	if u.Amount != nil {
		l.Amount = *u.Amount
	}
	if u.PersonName != nil {
		l.PersonName = *u.PersonName
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.ClearDueDate {
		l.DueDate = nil
	} else if u.DueDate != nil {
		due := *u.DueDate
		l.DueDate = &due
	}
	if u.InterestRate != nil {
		l.InterestRate = *u.InterestRate
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	return l
}
