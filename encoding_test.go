package budgety

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// The persisted field names and encodings are part of the storage layout and
// must not drift.
func TestTransactionEncoding(t *testing.T) {
	tx := Transaction{
		ID:        "t1",
		Amount:    dec(t, "12.50"),
		Type:      Expense,
		Category:  "Food & Dining",
		WalletID:  "w1",
		Date:      MustParseDate("2025-07-01"),
		CreatedAt: time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"id":"t1"`,
		`"amount":12.5`,
		`"type":"expense"`,
		`"walletId":"w1"`,
		`"date":"2025-07-01"`,
		`"createdAt":"2025-07-01T10:00:00Z"`,
	} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("encoded transaction misses %s:\n%s", want, raw)
		}
	}

	var back Transaction
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Type != Expense || !back.Amount.Equal(tx.Amount) || back.Date != tx.Date {
		t.Errorf("round trip = %+v", back)
	}
}

func TestNullableDatesEncoding(t *testing.T) {
	b := Budget{ID: "b1", Period: Monthly, StartDate: MustParseDate("2025-07-01")}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"endDate":null`) {
		t.Errorf("open-ended budget should encode endDate as null:\n%s", raw)
	}
	if !strings.Contains(string(raw), `"period":"monthly"`) {
		t.Errorf("period should encode as its name:\n%s", raw)
	}

	var back Budget
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.EndDate != nil {
		t.Errorf("null endDate decoded as %v", back.EndDate)
	}
}

func TestEnumEncodings(t *testing.T) {
	tests := []struct {
		value interface{ String() string }
		want  string
	}{
		{Checking, "checking"},
		{WalletInvestment, "investment"},
		{Income, "income"},
		{Lent, "lent"},
		{Overdue, "overdue"},
		{FixedDeposit, "fd"},
		{MutualFund, "mutual_fund"},
		{Weekly, "weekly"},
	}
	for _, tc := range tests {
		raw, err := json.Marshal(tc.value)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tc.value, err)
		}
		if string(raw) != `"`+tc.want+`"` {
			t.Errorf("Marshal(%v) = %s, want %q", tc.value, raw, tc.want)
		}
	}
}
