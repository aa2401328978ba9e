package budgety

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType int

const (
	FixedDeposit InvestmentType = iota
	RecurringDeposit
	Stock
	MutualFund
	ETF
	Bond
	Crypto
	Property
	OtherInvestment
)

func (t InvestmentType) String() string {
	switch t {
	case FixedDeposit:
		return "fd"
	case RecurringDeposit:
		return "rd"
	case Stock:
		return "stock"
	case MutualFund:
		return "mutual_fund"
	case ETF:
		return "etf"
	case Bond:
		return "bond"
	case Crypto:
		return "crypto"
	case Property:
		return "property"
	case OtherInvestment:
		return "other"
	default:
		return "unknown"
	}
}

// Label returns the human readable name of the investment type.
func (t InvestmentType) Label() string {
	switch t {
	case FixedDeposit:
		return "Fixed Deposit"
	case RecurringDeposit:
		return "Recurring Deposit"
	case Stock:
		return "Stock"
	case MutualFund:
		return "Mutual Fund"
	case ETF:
		return "ETF"
	case Bond:
		return "Bond"
	case Crypto:
		return "Crypto"
	case Property:
		return "Property"
	case OtherInvestment:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch s {
	case "fd":
		return FixedDeposit, nil
	case "rd":
		return RecurringDeposit, nil
	case "stock":
		return Stock, nil
	case "mutual_fund":
		return MutualFund, nil
	case "etf":
		return ETF, nil
	case "bond":
		return Bond, nil
	case "crypto":
		return Crypto, nil
	case "property":
		return Property, nil
	case "other":
		return OtherInvestment, nil
	default:
		return OtherInvestment, fmt.Errorf("unknown investment type %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (t InvestmentType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *InvestmentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseInvestmentType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Investment is a tracked holding outside the day-to-day wallets.
// CurrentValue defaults to InvestedAmount when not provided.
type Investment struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             InvestmentType  `json:"type"`
	Symbol           string          `json:"symbol,omitempty"`
	InstitutionName  string          `json:"institutionName,omitempty"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	StartDate        *Date           `json:"startDate,omitempty"`
	MaturityDate     *Date           `json:"maturityDate,omitempty"`
	PropertyAddress  string          `json:"propertyAddress,omitempty"`
	PropertyAreaSqFt float64         `json:"propertyAreaSqFt,omitempty"`
	RentalIncome     decimal.Decimal `json:"rentalIncome"`
	InvestedAmount   decimal.Decimal `json:"investedAmount"`
	CurrentValue     decimal.Decimal `json:"currentValue"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// InvestmentUpdate is a partial patch for an investment. Nil fields are left
// unchanged.
type InvestmentUpdate struct {
	Name             *string
	Type             *InvestmentType
	Symbol           *string
	InstitutionName  *string
	InterestRate     *decimal.Decimal
	StartDate        *Date
	MaturityDate     *Date
	PropertyAddress  *string
	PropertyAreaSqFt *float64
	RentalIncome     *decimal.Decimal
	InvestedAmount   *decimal.Decimal
	CurrentValue     *decimal.Decimal
	Description      *string
}

func (i Investment) merge(u InvestmentUpdate) Investment {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Type != nil {
		i.Type = *u.Type
	}
	if u.Symbol != nil {
		i.Symbol = *u.Symbol
	}
	if u.InstitutionName != nil {
		i.InstitutionName = *u.InstitutionName
	}
	if u.InterestRate != nil {
		i.InterestRate = *u.InterestRate
	}
	if u.StartDate != nil {
		start := *u.StartDate
		i.StartDate = &start
	}
	if u.MaturityDate != nil {
		maturity := *u.MaturityDate
		i.MaturityDate = &maturity
	}
	if u.PropertyAddress != nil {
		i.PropertyAddress = *u.PropertyAddress
	}
	if u.PropertyAreaSqFt != nil {
		i.PropertyAreaSqFt = *u.PropertyAreaSqFt
	}
	if u.RentalIncome != nil {
		i.RentalIncome = *u.RentalIncome
	}
	if u.InvestedAmount != nil {
		i.InvestedAmount = *u.InvestedAmount
	}
	if u.CurrentValue != nil {
		i.CurrentValue = *u.CurrentValue
	}
	if u.Description != nil {
		i.Description = *u.Description
	}
	return i
}
