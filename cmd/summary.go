package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the financial dashboard" }
func (*summaryCmd) Usage() string {
	return `bgt summary [-on <date>]

  Shows total balance, the month's income versus expenses, budget progress
  and the most recent transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "on", "0d", "Reference date for the summary.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := budgety.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Summary(on, store.Wallets(), store.Transactions(), store.Budgets()))
	return subcommands.ExitSuccess
}
