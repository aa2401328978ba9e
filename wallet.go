package budgety

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WalletType classifies a money-holding account.
type WalletType int

const (
	Checking WalletType = iota
	Savings
	Cash
	WalletInvestment
)

func (t WalletType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Cash:
		return "cash"
	case WalletInvestment:
		return "investment"
	default:
		return "unknown"
	}
}

// Label returns the human readable name of the wallet type.
func (t WalletType) Label() string {
	switch t {
	case Checking:
		return "Checking Account"
	case Savings:
		return "Savings Account"
	case Cash:
		return "Cash"
	case WalletInvestment:
		return "Investment"
	default:
		return "Unknown"
	}
}

// ParseWalletType parses a string into a WalletType.
func ParseWalletType(s string) (WalletType, error) {
	switch s {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "cash":
		return Cash, nil
	case "investment":
		return WalletInvestment, nil
	default:
		return Checking, fmt.Errorf("unknown wallet type %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (t WalletType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *WalletType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWalletType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// WalletTypes lists every wallet type in form order.
var WalletTypes = []WalletType{Checking, Savings, Cash, WalletInvestment}

// Wallet is a named money-holding account with a running balance.
//
// Balance is mutated only by transaction synchronization; editing it directly
// through UpdateWallet bypasses that bookkeeping.
type Wallet struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        WalletType      `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// WalletUpdate is a partial patch for a wallet. Nil fields are left unchanged.
type WalletUpdate struct {
	Name        *string
	Type        *WalletType
	Balance     *decimal.Decimal
	Currency    *string
	Description *string
}

func (w Wallet) merge(u WalletUpdate) Wallet {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Type != nil {
		w.Type = *u.Type
	}
	if u.Balance != nil {
		w.Balance = *u.Balance
	}
	if u.Currency != nil {
		w.Currency = *u.Currency
	}
	if u.Description != nil {
		w.Description = *u.Description
	}
	return w
}
