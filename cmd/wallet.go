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

// walletTypeNames lists the accepted -type values for usage texts.
func walletTypeNames() string {
	names := make([]string, len(budgety.WalletTypes))
	for i, t := range budgety.WalletTypes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

type addWalletCmd struct {
	name        string
	walletType  string
	balance     string
	currency    string
	description string
}

func (*addWalletCmd) Name() string     { return "add-wallet" }
func (*addWalletCmd) Synopsis() string { return "create a new wallet" }
func (*addWalletCmd) Usage() string {
	return fmt.Sprintf(`bgt add-wallet -name <name> [-type <type>] [-balance <amount>] [-currency <code>] [-desc <text>]

  Creates a wallet. Types: %s (default checking).
`, walletTypeNames())
}

func (c *addWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Wallet name.")
	f.StringVar(&c.walletType, "type", "checking", "Wallet type (checking, savings, cash, investment).")
	f.StringVar(&c.balance, "balance", "0", "Opening balance.")
	f.StringVar(&c.currency, "currency", "", "Currency code. Defaults to the configured currency.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
}

func (c *addWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing required -name"))
	}
	walletType, err := budgety.ParseWalletType(c.walletType)
	if err != nil {
		return fail(err)
	}
	balance, err := parseAmount(c.balance)
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	currency := c.currency
	if currency == "" {
		currency = appConfig.Currency
	}

	wallet, err := store.AddWallet(budgety.Wallet{
		Name:        c.name,
		Type:        walletType,
		Balance:     balance,
		Currency:    currency,
		Description: c.description,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created wallet %q (%s)\n", wallet.Name, wallet.ID)
	return subcommands.ExitSuccess
}

type walletsCmd struct{}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "list all wallets with balances" }
func (*walletsCmd) Usage() string {
	return `bgt wallets

  Lists every wallet with its running balance and the total across wallets.
`
}
func (*walletsCmd) SetFlags(f *flag.FlagSet) {}

func (c *walletsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Wallets(store.Wallets()))
	return subcommands.ExitSuccess
}

type editWalletCmd struct {
	id          string
	name        string
	walletType  string
	balance     string
	currency    string
	description string
}

func (*editWalletCmd) Name() string     { return "edit-wallet" }
func (*editWalletCmd) Synopsis() string { return "edit an existing wallet" }
func (*editWalletCmd) Usage() string {
	return `bgt edit-wallet -id <id> [-name <name>] [-type <type>] [-balance <amount>] [-currency <code>] [-desc <text>]

  Edits the given fields of a wallet; omitted flags are left unchanged.
  Editing -balance bypasses transaction bookkeeping and is meant for
  corrections only.
`
}

func (c *editWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Wallet id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.walletType, "type", "", "New type.")
	f.StringVar(&c.balance, "balance", "", "New balance (direct edit).")
	f.StringVar(&c.currency, "currency", "", "New currency code.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

// patch builds the partial update from the non-empty flags.
func (c *editWalletCmd) patch() (budgety.WalletUpdate, error) {
	var update budgety.WalletUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.walletType != "" {
		walletType, err := budgety.ParseWalletType(c.walletType)
		if err != nil {
			return update, err
		}
		update.Type = &walletType
	}
	if c.balance != "" {
		balance, err := parseAmount(c.balance)
		if err != nil {
			return update, err
		}
		update.Balance = &balance
	}
	if c.currency != "" {
		update.Currency = &c.currency
	}
	if c.description != "" {
		update.Description = &c.description
	}
	return update, nil
}

func (c *editWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	wallet, err := store.UpdateWallet(c.id, update)
	if err != nil {
		return fail(err)
	}
	if wallet == nil {
		return fail(fmt.Errorf("no wallet with id %q", c.id))
	}
	fmt.Printf("Updated wallet %q\n", wallet.Name)
	return subcommands.ExitSuccess
}

type deleteWalletCmd struct {
	id string
}

func (*deleteWalletCmd) Name() string     { return "delete-wallet" }
func (*deleteWalletCmd) Synopsis() string { return "delete a wallet" }
func (*deleteWalletCmd) Usage() string {
	return `bgt delete-wallet -id <id>

  Deletes a wallet. Its transactions are kept but stop affecting any balance.
`
}

func (c *deleteWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Wallet id.")
}

func (c *deleteWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.DeleteWallet(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted wallet %s\n", c.id)
	return subcommands.ExitSuccess
}
