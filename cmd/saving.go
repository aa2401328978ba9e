package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type addSavingCmd struct {
	name        string
	target      string
	current     string
	targetDate  string
	category    string
	description string
}

func (*addSavingCmd) Name() string     { return "add-saving" }
func (*addSavingCmd) Synopsis() string { return "create a saving goal" }
func (*addSavingCmd) Usage() string {
	return `bgt add-saving -name <name> -target <amount> [-current <amount>] [-by <date>] [-category <name>] [-desc <text>]

  Creates a saving goal. Money is added to it with "bgt save-add"; the
  goal is independent of wallets and transactions.
`
}

func (c *addSavingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.target, "target", "", "Target amount.")
	f.StringVar(&c.current, "current", "0", "Amount already saved.")
	f.StringVar(&c.targetDate, "by", "", "Optional target date.")
	f.StringVar(&c.category, "category", "", "Goal category.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
}

func (c *addSavingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing required -name"))
	}
	target, err := parseAmount(c.target)
	if err != nil {
		return fail(err)
	}
	current, err := parseAmount(c.current)
	if err != nil {
		return fail(err)
	}
	var targetDate *budgety.Date
	if c.targetDate != "" {
		d, err := budgety.ParseDate(c.targetDate)
		if err != nil {
			return fail(err)
		}
		targetDate = &d
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	goal, err := store.AddSaving(budgety.Saving{
		Name:          c.name,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
		Category:      c.category,
		Description:   c.description,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created saving goal %q (%s)\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}

type savingsCmd struct{}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "list saving goals with their progress" }
func (*savingsCmd) Usage() string {
	return `bgt savings

  Lists every saving goal with the saved amount against the target.
`
}
func (*savingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Savings(store.Savings()))
	return subcommands.ExitSuccess
}

type saveAddCmd struct {
	id     string
	amount string
}

func (*saveAddCmd) Name() string     { return "save-add" }
func (*saveAddCmd) Synopsis() string { return "add money to a saving goal" }
func (*saveAddCmd) Usage() string {
	return `bgt save-add -id <id> -amount <amount>

  Adds the amount to the goal's saved total.
`
}

func (c *saveAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Saving goal id.")
	f.StringVar(&c.amount, "amount", "", "Amount to add.")
}

func (c *saveAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	goal, err := store.AddToSaving(c.id, amount)
	if err != nil {
		return fail(err)
	}
	if goal == nil {
		return fail(fmt.Errorf("no saving goal with id %q", c.id))
	}
	progress := budgety.SavingProgress(*goal)
	fmt.Printf("Saved %s towards %q: %s of %s (%.0f%%)\n",
		amount, goal.Name, goal.CurrentAmount, goal.TargetAmount, progress.Percentage)
	return subcommands.ExitSuccess
}

type deleteSavingCmd struct {
	id string
}

func (*deleteSavingCmd) Name() string     { return "delete-saving" }
func (*deleteSavingCmd) Synopsis() string { return "delete a saving goal" }
func (*deleteSavingCmd) Usage() string {
	return `bgt delete-saving -id <id>

  Deletes a saving goal.
`
}

func (c *deleteSavingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Saving goal id.")
}

func (c *deleteSavingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.DeleteSaving(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted saving goal %s\n", c.id)
	return subcommands.ExitSuccess
}

type editSavingCmd struct {
	id          string
	name        string
	target      string
	current     string
	targetDate  string
	clearDate   bool
	category    string
	description string
}

func (*editSavingCmd) Name() string     { return "edit-saving" }
func (*editSavingCmd) Synopsis() string { return "edit an existing saving goal" }
func (*editSavingCmd) Usage() string {
	return `bgt edit-saving -id <id> [-name <name>] [-target <amount>] [-current <amount>] [-by <date> | -no-deadline] [-category <name>] [-desc <text>]

  Edits the given fields of a saving goal; omitted flags are left
  unchanged. -current is a direct correction; prefer "bgt save-add" for
  adding money. -no-deadline removes the target date.
`
}

func (c *editSavingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Saving goal id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.target, "target", "", "New target amount.")
	f.StringVar(&c.current, "current", "", "New saved amount (direct edit).")
	f.StringVar(&c.targetDate, "by", "", "New target date.")
	f.BoolVar(&c.clearDate, "no-deadline", false, "Remove the target date.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

// patch builds the partial update from the non-empty flags.
func (c *editSavingCmd) patch() (budgety.SavingUpdate, error) {
	var update budgety.SavingUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.target != "" {
		target, err := parseAmount(c.target)
		if err != nil {
			return update, err
		}
		update.TargetAmount = &target
	}
	if c.current != "" {
		current, err := parseAmount(c.current)
		if err != nil {
			return update, err
		}
		update.CurrentAmount = &current
	}
	switch {
	case c.clearDate:
		update.ClearTargetDate = true
	case c.targetDate != "":
		date, err := budgety.ParseDate(c.targetDate)
		if err != nil {
			return update, err
		}
		update.TargetDate = &date
	}
	if c.category != "" {
		update.Category = &c.category
	}
	if c.description != "" {
		update.Description = &c.description
	}
	return update, nil
}

func (c *editSavingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	goal, err := store.UpdateSaving(c.id, update)
	if err != nil {
		return fail(err)
	}
	if goal == nil {
		return fail(fmt.Errorf("no saving goal with id %q", c.id))
	}
	fmt.Printf("Updated saving goal %q\n", goal.Name)
	return subcommands.ExitSuccess
}
