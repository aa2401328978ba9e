package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/budgety"
)

// Summary renders the dashboard view: total balance, the month's cash flow,
// budget progress and the most recent transactions.
func Summary(on budgety.Date, wallets []budgety.Wallet, transactions []budgety.Transaction, budgets []budgety.Budget) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary for %s\n\n", on)
	fmt.Fprintf(&b, "Total balance across %d wallet(s): **%s**\n\n", len(wallets), budgety.TotalBalance(wallets))

	flow := budgety.IncomeVsExpenses(transactions, budgety.Monthly, on)
	fmt.Fprintf(&b, "## This month\n\n")
	fmt.Fprintf(&b, "| Income | Expenses | Net |\n")
	fmt.Fprintf(&b, "|--:|--:|--:|\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n\n", flow.Income, flow.Expenses, flow.Net)

	if len(budgets) > 0 {
		fmt.Fprintf(&b, "## Budgets\n\n")
		for _, budget := range budgets {
			progress := budgety.BudgetProgress(budget, transactions)
			fmt.Fprintf(&b, "- %s (%s): %s %.0f%%, %s remaining\n",
				budget.Name, budget.Category, progressBar(progress.Percentage),
				progress.Percentage, progress.Remaining)
		}
		fmt.Fprintf(&b, "\n")
	}

	recent := budgety.RecentTransactions(transactions, 5)
	if len(recent) > 0 {
		fmt.Fprintf(&b, "## Recent transactions\n\n")
		b.WriteString(Transactions(recent, wallets))
	}

	return b.String()
}
