// Package renderer converts budgety collections and reports into markdown
// suitable for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/budgety"
)

// progressBar renders a ten-segment bar for a percentage in [0,100].
func progressBar(percentage float64) string {
	filled := int(percentage / 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// walletIndex indexes wallets by id for display lookups.
func walletIndex(wallets []budgety.Wallet) map[string]budgety.Wallet {
	index := make(map[string]budgety.Wallet, len(wallets))
	for _, w := range wallets {
		index[w.ID] = w
	}
	return index
}

// shortID keeps ids readable in tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Wallets renders the wallet collection as a markdown table with a total row.
func Wallets(wallets []budgety.Wallet) string {
	if len(wallets) == 0 {
		return "No wallets yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Wallets\n\n")
	fmt.Fprintf(&b, "| ID | Name | Type | Balance |\n")
	fmt.Fprintf(&b, "|---|---|---|--:|\n")
	for _, w := range wallets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			shortID(w.ID), w.Name, w.Type.Label(), budgety.M(w.Balance, w.Currency))
	}
	// Summing assumes a single currency; display the total in the first one.
	fmt.Fprintf(&b, "\nTotal balance: **%s**\n", budgety.M(budgety.TotalBalance(wallets), wallets[0].Currency))
	return b.String()
}

// Transactions renders transactions as a markdown table, newest first.
func Transactions(transactions []budgety.Transaction, wallets []budgety.Wallet) string {
	if len(transactions) == 0 {
		return "No transactions yet.\n"
	}
	index := walletIndex(wallets)
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintf(&b, "| ID | Date | Category | Wallet | Amount | Description |\n")
	fmt.Fprintf(&b, "|---|---|---|---|--:|---|\n")
	for _, t := range transactions {
		name, currency := shortID(t.WalletID), ""
		if w, ok := index[t.WalletID]; ok {
			name, currency = w.Name, w.Currency
		}
		amount := budgety.M(t.Amount, currency)
		if t.Type == budgety.Expense {
			amount = amount.Neg()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			shortID(t.ID), t.Date, t.Category, name, amount.SignedString(), t.Description)
	}
	return b.String()
}

// Budgets renders each budget with its progress against matching expenses.
func Budgets(budgets []budgety.Budget, transactions []budgety.Transaction) string {
	if len(budgets) == 0 {
		return "No budgets yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets\n\n")
	fmt.Fprintf(&b, "| ID | Name | Category | Period | Spent | Ceiling | Progress |\n")
	fmt.Fprintf(&b, "|---|---|---|---|--:|--:|---|\n")
	for _, budget := range budgets {
		progress := budgety.BudgetProgress(budget, transactions)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s %.0f%% |\n",
			shortID(budget.ID), budget.Name, budget.Category, budget.Period,
			progress.Spent, budget.Amount, progressBar(progress.Percentage), progress.Percentage)
	}
	return b.String()
}

// Savings renders each saving goal with its progress.
func Savings(savings []budgety.Saving) string {
	if len(savings) == 0 {
		return "No saving goals yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Saving Goals\n\n")
	fmt.Fprintf(&b, "| ID | Name | Saved | Target | Progress |\n")
	fmt.Fprintf(&b, "|---|---|--:|--:|---|\n")
	for _, g := range savings {
		progress := budgety.SavingProgress(g)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s %.0f%% |\n",
			shortID(g.ID), g.Name, g.CurrentAmount, g.TargetAmount,
			progressBar(progress.Percentage), progress.Percentage)
	}
	return b.String()
}

// Loans renders the loan collection as a markdown table.
func Loans(loans []budgety.Loan) string {
	if len(loans) == 0 {
		return "No loans yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Loans\n\n")
	fmt.Fprintf(&b, "| ID | Person | Type | Amount | Paid | Status | Due |\n")
	fmt.Fprintf(&b, "|---|---|---|--:|--:|---|---|\n")
	for _, l := range loans {
		due := "-"
		if l.DueDate != nil {
			due = l.DueDate.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			shortID(l.ID), l.PersonName, l.Type, l.Amount, l.PaidAmount, l.Status, due)
	}
	return b.String()
}

// Investments renders the investment collection as a markdown table.
func Investments(investments []budgety.Investment) string {
	if len(investments) == 0 {
		return "No investments yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Investments\n\n")
	fmt.Fprintf(&b, "| ID | Name | Type | Invested | Current | Gain |\n")
	fmt.Fprintf(&b, "|---|---|---|--:|--:|--:|\n")
	for _, inv := range investments {
		gain := inv.CurrentValue.Sub(inv.InvestedAmount)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			shortID(inv.ID), inv.Name, inv.Type.Label(), inv.InvestedAmount, inv.CurrentValue, gain)
	}
	return b.String()
}
