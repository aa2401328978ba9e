package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type addBudgetCmd struct {
	name     string
	category string
	amount   string
	period   string
	start    string
	end      string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a spending budget for a category" }
func (*addBudgetCmd) Usage() string {
	return `bgt add-budget -name <name> -category <name> -amount <ceiling> [-period weekly|monthly|yearly] [-start <date>] [-end <date>]

  Creates a budget. Expenses in the category dated from -start (to -end,
  when given) count against the ceiling.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Budget name.")
	f.StringVar(&c.category, "category", "", "Expense category the budget tracks.")
	f.StringVar(&c.amount, "amount", "", "Spending ceiling.")
	f.StringVar(&c.period, "period", "monthly", "Budget period (weekly, monthly, yearly).")
	f.StringVar(&c.start, "start", "0d", "Start date.")
	f.StringVar(&c.end, "end", "", "Optional end date; omit for an open-ended budget.")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing required -name"))
	}
	if c.category == "" {
		return fail(fmt.Errorf("missing required -category"))
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	period, err := budgety.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	start, err := budgety.ParseDate(c.start)
	if err != nil {
		return fail(err)
	}
	var end *budgety.Date
	if c.end != "" {
		d, err := budgety.ParseDate(c.end)
		if err != nil {
			return fail(err)
		}
		end = &d
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	budget, err := store.AddBudget(budgety.Budget{
		Name:      c.name,
		Category:  c.category,
		Amount:    amount,
		Period:    period,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created budget %q (%s)\n", budget.Name, budget.ID)
	return subcommands.ExitSuccess
}

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list budgets with their progress" }
func (*budgetsCmd) Usage() string {
	return `bgt budgets

  Lists every budget with the spent total and consumption of its ceiling.
`
}
func (*budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Budgets(store.Budgets(), store.Transactions()))
	return subcommands.ExitSuccess
}

type deleteBudgetCmd struct {
	id string
}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "delete a budget" }
func (*deleteBudgetCmd) Usage() string {
	return `bgt delete-budget -id <id>

  Deletes a budget. Transactions are unaffected.
`
}

func (c *deleteBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget id.")
}

func (c *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.DeleteBudget(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted budget %s\n", c.id)
	return subcommands.ExitSuccess
}

type editBudgetCmd struct {
	id       string
	name     string
	category string
	amount   string
	period   string
	start    string
	end      string
	clearEnd bool
}

func (*editBudgetCmd) Name() string     { return "edit-budget" }
func (*editBudgetCmd) Synopsis() string { return "edit an existing budget" }
func (*editBudgetCmd) Usage() string {
	return `bgt edit-budget -id <id> [-name <name>] [-category <name>] [-amount <ceiling>] [-period weekly|monthly|yearly] [-start <date>] [-end <date> | -open]

  Edits the given fields of a budget; omitted flags are left unchanged.
  -open removes the end date, making the budget open-ended again.
`
}

func (c *editBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.amount, "amount", "", "New ceiling.")
	f.StringVar(&c.period, "period", "", "New period.")
	f.StringVar(&c.start, "start", "", "New start date.")
	f.StringVar(&c.end, "end", "", "New end date.")
	f.BoolVar(&c.clearEnd, "open", false, "Remove the end date.")
}

// patch builds the partial update from the non-empty flags.
func (c *editBudgetCmd) patch() (budgety.BudgetUpdate, error) {
	var update budgety.BudgetUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.category != "" {
		update.Category = &c.category
	}
	if c.amount != "" {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return update, err
		}
		update.Amount = &amount
	}
	if c.period != "" {
		period, err := budgety.ParsePeriod(c.period)
		if err != nil {
			return update, err
		}
		update.Period = &period
	}
	if c.start != "" {
		start, err := budgety.ParseDate(c.start)
		if err != nil {
			return update, err
		}
		update.StartDate = &start
	}
	switch {
	case c.clearEnd:
		update.ClearEndDate = true
	case c.end != "":
		end, err := budgety.ParseDate(c.end)
		if err != nil {
			return update, err
		}
		update.EndDate = &end
	}
	return update, nil
}

func (c *editBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	update, err := c.patch()
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	budget, err := store.UpdateBudget(c.id, update)
	if err != nil {
		return fail(err)
	}
	if budget == nil {
		return fail(fmt.Errorf("no budget with id %q", c.id))
	}
	fmt.Printf("Updated budget %q\n", budget.Name)
	return subcommands.ExitSuccess
}
