package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all stored data" }
func (*resetCmd) Usage() string {
	return `bgt reset -force

  Erases every collection: wallets, transactions, budgets, savings, loans
  and investments. There is no undo; -force is required.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the reset.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		return fail(fmt.Errorf("reset erases all data; run again with -force to confirm"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := store.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("All data erased.")
	return subcommands.ExitSuccess
}
