package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/budgety"
	"github.com/shopspring/decimal"
)

func TestWalletsTable(t *testing.T) {
	wallets := []budgety.Wallet{
		{ID: "11111111-aaaa", Name: "Checking", Balance: decimal.NewFromInt(100), Currency: "USD"},
		{ID: "22222222-bbbb", Name: "Cash", Type: budgety.Cash, Balance: decimal.NewFromInt(50), Currency: "USD"},
	}
	got := Wallets(wallets)
	for _, want := range []string{"# Wallets", "| 11111111 |", "Checking", "Cash", "Total balance: **$150.00**"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestWalletsEmpty(t *testing.T) {
	if got := Wallets(nil); !strings.Contains(got, "No wallets") {
		t.Errorf("empty list rendering = %q", got)
	}
}

func TestTransactionsSignsAmounts(t *testing.T) {
	wallets := []budgety.Wallet{{ID: "w1", Name: "Checking", Currency: "USD"}}
	transactions := []budgety.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(30), Type: budgety.Income, Category: "Salary", WalletID: "w1", Date: budgety.MustParseDate("2025-07-01")},
		{ID: "t2", Amount: decimal.NewFromInt(10), Type: budgety.Expense, Category: "Food & Dining", WalletID: "w1", Date: budgety.MustParseDate("2025-07-02")},
		{ID: "t3", Amount: decimal.NewFromInt(5), Type: budgety.Expense, Category: "Other Expense", WalletID: "ghost", Date: budgety.MustParseDate("2025-07-03")},
	}
	got := Transactions(transactions, wallets)
	// Known wallets format in their currency; orphans fall back to plain numbers.
	for _, want := range []string{"+$30.00", "-$10.00", "Checking", "ghost", "-5"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
	}
	for _, tc := range tests {
		if got := progressBar(tc.pct); got != tc.want {
			t.Errorf("progressBar(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestSummarySections(t *testing.T) {
	on := budgety.MustParseDate("2025-07-15")
	wallets := []budgety.Wallet{{ID: "w1", Name: "Checking", Balance: decimal.NewFromInt(100), Currency: "USD"}}
	transactions := []budgety.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(30), Type: budgety.Income, Category: "Salary", WalletID: "w1", Date: budgety.MustParseDate("2025-07-01")},
	}
	budgets := []budgety.Budget{
		{ID: "b1", Name: "Food", Category: "Food & Dining", Amount: decimal.NewFromInt(500), Period: budgety.Monthly, StartDate: budgety.MustParseDate("2025-07-01")},
	}

	got := Summary(on, wallets, transactions, budgets)
	for _, want := range []string{"# Summary for 2025-07-15", "## This month", "## Budgets", "## Recent transactions"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
