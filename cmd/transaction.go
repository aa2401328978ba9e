package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type addTxCmd struct {
	amount      string
	txType      string
	category    string
	description string
	walletID    string
	date        string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addTxCmd) Usage() string {
	return fmt.Sprintf(`bgt add-tx -wallet <id> -amount <amount> -category <name> [-type expense|income] [-date <date>] [-desc <text>]

  Records a transaction and adjusts the wallet balance: income adds the
  amount, expense subtracts it. -date accepts ISO dates (2025-07-01) and
  relative forms like -1d or -2w; it defaults to today.

  Category is free form. Common expense categories: %s.
  Common income categories: %s.
`, strings.Join(budgety.ExpenseCategories, ", "), strings.Join(budgety.IncomeCategories, ", "))
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Transaction amount (a positive magnitude).")
	f.StringVar(&c.txType, "type", "expense", "Transaction type (expense or income).")
	f.StringVar(&c.category, "category", "", "Category name.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.walletID, "wallet", "", "Wallet id the transaction belongs to.")
	f.StringVar(&c.date, "date", "0d", "Transaction date.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.walletID == "" {
		return fail(fmt.Errorf("missing required -wallet"))
	}
	if c.category == "" {
		return fail(fmt.Errorf("missing required -category"))
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	txType, err := budgety.ParseTransactionType(c.txType)
	if err != nil {
		return fail(err)
	}
	date, err := budgety.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	t, err := store.AddTransaction(budgety.Transaction{
		Amount:      amount,
		Type:        txType,
		Category:    c.category,
		Description: c.description,
		WalletID:    c.walletID,
		Date:        date,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s on %s (%s)\n", t.Type, t.Amount, t.Date, t.ID)
	return subcommands.ExitSuccess
}

type txCmd struct {
	recent int
	from   string
	to     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `bgt tx [-recent <n>] [-from <date> -to <date>]

  Lists transactions. -recent shows the n most recent; -from/-to restrict
  to a date range (boundaries included). Without flags, every transaction
  is listed in insertion order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "recent", 0, "Show only the n most recent transactions.")
	f.StringVar(&c.from, "from", "", "Start of the date range.")
	f.StringVar(&c.to, "to", "", "End of the date range.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	transactions := store.Transactions()
	switch {
	case c.recent > 0:
		transactions = budgety.RecentTransactions(transactions, c.recent)
	case c.from != "" || c.to != "":
		if c.from == "" || c.to == "" {
			return fail(fmt.Errorf("-from and -to must be given together"))
		}
		from, err := budgety.ParseDate(c.from)
		if err != nil {
			return fail(err)
		}
		to, err := budgety.ParseDate(c.to)
		if err != nil {
			return fail(err)
		}
		transactions = budgety.TransactionsByRange(transactions, budgety.NewRange(from, to))
	}

	printMarkdown(renderer.Transactions(transactions, store.Wallets()))
	return subcommands.ExitSuccess
}

type editTxCmd struct {
	id          string
	amount      string
	txType      string
	category    string
	description string
	date        string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "edit an existing transaction" }
func (*editTxCmd) Usage() string {
	return `bgt edit-tx -id <id> [-amount <amount>] [-type expense|income] [-category <name>] [-date <date>] [-desc <text>]

  Edits the given fields of a transaction; omitted flags are left
  unchanged. Changing -amount or -type fixes up the wallet balance.
  A transaction cannot be moved to another wallet.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.txType, "type", "", "New type (expense or income).")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.date, "date", "", "New date.")
}

// patch builds the partial update from the non-empty flags.
func (c *editTxCmd) patch() (budgety.TransactionUpdate, error) {
	var update budgety.TransactionUpdate
	if c.amount != "" {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return update, err
		}
		update.Amount = &amount
	}
	if c.txType != "" {
		txType, err := budgety.ParseTransactionType(c.txType)
		if err != nil {
			return update, err
		}
		update.Type = &txType
	}
	if c.category != "" {
		update.Category = &c.category
	}
	if c.description != "" {
		update.Description = &c.description
	}
	if c.date != "" {
		date, err := budgety.ParseDate(c.date)
		if err != nil {
			return update, err
		}
		update.Date = &date
	}
	return update, nil
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	t, err := store.UpdateTransaction(c.id, update)
	if err != nil {
		return fail(err)
	}
	if t == nil {
		return fail(fmt.Errorf("no transaction with id %q", c.id))
	}
	fmt.Printf("Updated transaction %s\n", t.ID)
	return subcommands.ExitSuccess
}

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `bgt delete-tx -id <id>

  Deletes a transaction and reverses its effect on the wallet balance.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id.")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	deleted, err := store.DeleteTransaction(c.id)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		return fail(fmt.Errorf("no transaction with id %q", c.id))
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
