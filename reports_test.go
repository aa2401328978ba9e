package budgety

import (
	"testing"
)

func tx(t *testing.T, id string, txType TransactionType, amount, category, date string) Transaction {
	t.Helper()
	return Transaction{
		ID:       id,
		Amount:   dec(t, amount),
		Type:     txType,
		Category: category,
		Date:     MustParseDate(date),
	}
}

func TestTotalBalance(t *testing.T) {
	wallets := []Wallet{
		{Balance: dec(t, "100.50")},
		{Balance: dec(t, "-20")},
		{Balance: dec(t, "19.50")},
	}
	if got := TotalBalance(wallets); !got.Equal(dec(t, "100")) {
		t.Errorf("TotalBalance = %s, want 100", got)
	}
	if got := TotalBalance(nil); !got.IsZero() {
		t.Errorf("TotalBalance(nil) = %s", got)
	}
}

func TestRecentTransactions(t *testing.T) {
	transactions := []Transaction{
		tx(t, "a", Expense, "1", "Food & Dining", "2025-07-01"),
		tx(t, "b", Expense, "2", "Food & Dining", "2025-07-03"),
		tx(t, "c", Expense, "3", "Food & Dining", "2025-07-02"),
		tx(t, "d", Expense, "4", "Food & Dining", "2025-07-03"),
	}

	got := RecentTransactions(transactions, 3)
	want := []string{"b", "d", "c"} // same-day entries keep insertion order
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("recent[%d] = %s, want %s", i, got[i].ID, id)
		}
	}

	// A non-positive limit defaults to 5.
	if got := RecentTransactions(transactions, 0); len(got) != 4 {
		t.Errorf("limit 0: got %d, want all 4", len(got))
	}
	// The input order must not be disturbed.
	if transactions[0].ID != "a" {
		t.Error("RecentTransactions mutated its input")
	}
}

func TestTransactionsByRange(t *testing.T) {
	transactions := []Transaction{
		tx(t, "before", Expense, "1", "x", "2025-06-30"),
		tx(t, "start", Expense, "1", "x", "2025-07-01"),
		tx(t, "mid", Expense, "1", "x", "2025-07-15"),
		tx(t, "end", Expense, "1", "x", "2025-07-31"),
		tx(t, "after", Expense, "1", "x", "2025-08-01"),
	}
	r := NewRange(MustParseDate("2025-07-01"), MustParseDate("2025-07-31"))

	got := TransactionsByRange(transactions, r)
	want := []string{"start", "mid", "end"}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("matched[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestBudgetProgress(t *testing.T) {
	budget := Budget{
		Category:  "Food & Dining",
		Amount:    dec(t, "100"),
		Period:    Monthly,
		StartDate: MustParseDate("2025-07-01"),
	}
	transactions := []Transaction{
		tx(t, "in-range", Expense, "30", "Food & Dining", "2025-07-10"),
		tx(t, "boundary", Expense, "20", "Food & Dining", "2025-07-01"),
		tx(t, "wrong-category", Expense, "99", "Travel", "2025-07-10"),
		tx(t, "income-ignored", Income, "99", "Food & Dining", "2025-07-10"),
		tx(t, "too-early", Expense, "99", "Food & Dining", "2025-06-30"),
	}

	got := BudgetProgress(budget, transactions)
	if !got.Spent.Equal(dec(t, "50")) {
		t.Errorf("Spent = %s, want 50", got.Spent)
	}
	if !got.Remaining.Equal(dec(t, "50")) {
		t.Errorf("Remaining = %s, want 50", got.Remaining)
	}
	if got.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", got.Percentage)
	}
}

func TestBudgetProgressEndDateAndCap(t *testing.T) {
	end := MustParseDate("2025-07-31")
	budget := Budget{
		Category:  "Travel",
		Amount:    dec(t, "100"),
		StartDate: MustParseDate("2025-07-01"),
		EndDate:   &end,
	}
	transactions := []Transaction{
		tx(t, "on-end", Expense, "120", "Travel", "2025-07-31"),
		tx(t, "past-end", Expense, "99", "Travel", "2025-08-01"),
	}

	got := BudgetProgress(budget, transactions)
	if !got.Spent.Equal(dec(t, "120")) {
		t.Errorf("Spent = %s, want 120 (end date inclusive)", got.Spent)
	}
	if got.Percentage != 100 {
		t.Errorf("Percentage = %v, want capped 100", got.Percentage)
	}
	if !got.Remaining.Equal(dec(t, "-20")) {
		t.Errorf("Remaining = %s, want -20 (overrun shown)", got.Remaining)
	}
}

func TestBudgetProgressZeroCeiling(t *testing.T) {
	budget := Budget{Category: "x", StartDate: MustParseDate("2025-07-01")}
	got := BudgetProgress(budget, []Transaction{
		tx(t, "a", Expense, "10", "x", "2025-07-02"),
	})
	if got.Percentage != 0 {
		t.Errorf("Percentage with zero ceiling = %v, want 0", got.Percentage)
	}
}

func TestSavingProgress(t *testing.T) {
	tests := []struct {
		name            string
		current, target string
		wantPct         float64
		wantRemaining   string
	}{
		{"halfway", "50", "100", 50, "50"},
		{"complete", "100", "100", 100, "0"},
		{"over target caps", "150", "100", 100, "-50"},
		{"zero target", "10", "0", 0, "-10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SavingProgress(Saving{
				CurrentAmount: dec(t, tc.current),
				TargetAmount:  dec(t, tc.target),
			})
			if got.Percentage != tc.wantPct {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tc.wantPct)
			}
			if !got.Remaining.Equal(dec(t, tc.wantRemaining)) {
				t.Errorf("Remaining = %s, want %s", got.Remaining, tc.wantRemaining)
			}
		})
	}
}

func TestIncomeVsExpenses(t *testing.T) {
	today := MustParseDate("2025-07-15")
	transactions := []Transaction{
		tx(t, "salary", Income, "1000", "Salary", "2025-07-01"),
		tx(t, "rent", Expense, "400", "Bills & Utilities", "2025-07-02"),
		tx(t, "recent", Expense, "50", "Food & Dining", "2025-07-14"),
		tx(t, "last-month", Income, "999", "Salary", "2025-06-15"),
		tx(t, "last-year", Expense, "999", "Travel", "2024-12-31"),
	}

	t.Run("monthly", func(t *testing.T) {
		got := IncomeVsExpenses(transactions, Monthly, today)
		if !got.Income.Equal(dec(t, "1000")) || !got.Expenses.Equal(dec(t, "450")) {
			t.Errorf("monthly = %+v", got)
		}
		if !got.Net.Equal(dec(t, "550")) {
			t.Errorf("Net = %s, want 550", got.Net)
		}
	})
	t.Run("weekly is trailing 7 days", func(t *testing.T) {
		got := IncomeVsExpenses(transactions, Weekly, today)
		if !got.Income.IsZero() || !got.Expenses.Equal(dec(t, "50")) {
			t.Errorf("weekly = %+v", got)
		}
	})
	t.Run("yearly", func(t *testing.T) {
		got := IncomeVsExpenses(transactions, Yearly, today)
		if !got.Income.Equal(dec(t, "1999")) || !got.Expenses.Equal(dec(t, "450")) {
			t.Errorf("yearly = %+v", got)
		}
	})
}
