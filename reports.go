package budgety

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Derived aggregations. Everything here is a pure function over collections
// already loaded from the store.

// TotalBalance sums the balances of all wallets.
func TotalBalance(wallets []Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}
	return total
}

// RecentTransactions returns up to limit transactions sorted by date
// descending. Transactions on the same date keep their original collection
// order. A non-positive limit defaults to 5.
func RecentTransactions(transactions []Transaction, limit int) []Transaction {
	if limit <= 0 {
		limit = 5
	}
	sorted := append([]Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// TransactionsByRange returns the transactions dated within r, boundaries
// included.
func TransactionsByRange(transactions []Transaction, r Range) []Transaction {
	var matched []Transaction
	for _, t := range transactions {
		if r.Contains(t.Date) {
			matched = append(matched, t)
		}
	}
	return matched
}

// BudgetProgressReport describes how far a budget is consumed.
type BudgetProgressReport struct {
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64 // capped at 100
}

// BudgetProgress matches expense transactions by category within the budget's
// date range ([startDate, endDate] inclusive, open-ended when endDate is nil)
// and reports the spent total against the budget ceiling.
func BudgetProgress(b Budget, transactions []Transaction) BudgetProgressReport {
	spent := decimal.Zero
	for _, t := range transactions {
		if t.Category != b.Category || t.Type != Expense {
			continue
		}
		if t.Date.Before(b.StartDate) {
			continue
		}
		if b.EndDate != nil && t.Date.After(*b.EndDate) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	var percentage float64
	if b.Amount.IsPositive() {
		percentage = spent.Div(b.Amount).InexactFloat64() * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	return BudgetProgressReport{
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: percentage,
	}
}

// SavingProgressReport describes progress towards a saving goal.
type SavingProgressReport struct {
	Percentage float64 // capped at 100
	Remaining  decimal.Decimal
}

// SavingProgress reports how close a saving goal is to its target.
func SavingProgress(s Saving) SavingProgressReport {
	var percentage float64
	if s.TargetAmount.IsPositive() {
		percentage = s.CurrentAmount.Div(s.TargetAmount).InexactFloat64() * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	return SavingProgressReport{
		Percentage: percentage,
		Remaining:  s.TargetAmount.Sub(s.CurrentAmount),
	}
}

// CashFlow is an income versus expenses summary.
type CashFlow struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// IncomeVsExpenses totals income and expenses from the start of the given
// period up to today, inclusive. A week is the trailing 7 days; a month
// starts on the 1st; a year starts on January 1st.
func IncomeVsExpenses(transactions []Transaction, p Period, today Date) CashFlow {
	var start Date
	switch p {
	case Weekly:
		start = today.Add(-7)
	case Yearly:
		start = today.StartOf(Yearly)
	default:
		start = today.StartOf(Monthly)
	}

	var flow CashFlow
	for _, t := range TransactionsByRange(transactions, NewRange(start, today)) {
		switch t.Type {
		case Income:
			flow.Income = flow.Income.Add(t.Amount)
		case Expense:
			flow.Expenses = flow.Expenses.Add(t.Amount)
		}
	}
	flow.Net = flow.Income.Sub(flow.Expenses)
	return flow
}
