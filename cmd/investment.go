package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type addInvestmentCmd struct {
	name        string
	invType     string
	invested    string
	current     string
	symbol      string
	institution string
	interest    string
	start       string
	maturity    string
	address     string
	area        float64
	rental      string
	description string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "track an investment holding" }
func (*addInvestmentCmd) Usage() string {
	return `bgt add-investment -name <name> -invested <amount> [-type <type>] [-value <amount>] [-symbol <ticker>] [-institution <name>] [-rate <percent>] [-start <date>] [-maturity <date>] [-desc <text>]

  Tracks an investment. Types: fd, rd, stock, mutual_fund, etf, bond,
  crypto, property, other. -value defaults to the invested amount.
`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Investment name.")
	f.StringVar(&c.invType, "type", "other", "Investment type.")
	f.StringVar(&c.invested, "invested", "", "Amount invested.")
	f.StringVar(&c.current, "value", "", "Current value. Defaults to the invested amount.")
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol, for market instruments.")
	f.StringVar(&c.institution, "institution", "", "Holding institution, for deposits.")
	f.StringVar(&c.interest, "rate", "0", "Annual interest rate in percent.")
	f.StringVar(&c.start, "start", "", "Optional start date.")
	f.StringVar(&c.maturity, "maturity", "", "Optional maturity date.")
	f.StringVar(&c.address, "address", "", "Property address, for property investments.")
	f.Float64Var(&c.area, "area", 0, "Property area in square feet.")
	f.StringVar(&c.rental, "rental", "0", "Monthly rental income, for property investments.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing required -name"))
	}
	invType, err := budgety.ParseInvestmentType(c.invType)
	if err != nil {
		return fail(err)
	}
	invested, err := parseAmount(c.invested)
	if err != nil {
		return fail(err)
	}
	rental, err := parseAmount(c.rental)
	if err != nil {
		return fail(err)
	}
	inv := budgety.Investment{
		Name:             c.name,
		Type:             invType,
		Symbol:           c.symbol,
		InstitutionName:  c.institution,
		PropertyAddress:  c.address,
		PropertyAreaSqFt: c.area,
		RentalIncome:     rental,
		InvestedAmount:   invested,
		Description:      c.description,
	}
	if c.current != "" {
		value, err := parseAmount(c.current)
		if err != nil {
			return fail(err)
		}
		inv.CurrentValue = value
	}
	rate, err := parseAmount(c.interest)
	if err != nil {
		return fail(err)
	}
	inv.InterestRate = rate
	if c.start != "" {
		d, err := budgety.ParseDate(c.start)
		if err != nil {
			return fail(err)
		}
		inv.StartDate = &d
	}
	if c.maturity != "" {
		d, err := budgety.ParseDate(c.maturity)
		if err != nil {
			return fail(err)
		}
		inv.MaturityDate = &d
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	created, err := store.AddInvestment(inv)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Tracking %s %q (%s)\n", created.Type.Label(), created.Name, created.ID)
	return subcommands.ExitSuccess
}

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list investments" }
func (*investmentsCmd) Usage() string {
	return `bgt investments

  Lists every investment with its invested amount, current value and gain.
`
}
func (*investmentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Investments(store.Investments()))
	return subcommands.ExitSuccess
}

type deleteInvestmentCmd struct {
	id string
}

func (*deleteInvestmentCmd) Name() string     { return "delete-investment" }
func (*deleteInvestmentCmd) Synopsis() string { return "delete an investment" }
func (*deleteInvestmentCmd) Usage() string {
	return `bgt delete-investment -id <id>

  Stops tracking an investment.
`
}

func (c *deleteInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment id.")
}

func (c *deleteInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.DeleteInvestment(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted investment %s\n", c.id)
	return subcommands.ExitSuccess
}

type editInvestmentCmd struct {
	id          string
	name        string
	invType     string
	invested    string
	current     string
	symbol      string
	institution string
	interest    string
	start       string
	maturity    string
	address     string
	area        float64
	rental      string
	description string
}

func (*editInvestmentCmd) Name() string     { return "edit-investment" }
func (*editInvestmentCmd) Synopsis() string { return "edit an existing investment" }
func (*editInvestmentCmd) Usage() string {
	return `bgt edit-investment -id <id> [-name <name>] [-type <type>] [-invested <amount>] [-value <amount>] [-symbol <ticker>] [-institution <name>] [-rate <percent>] [-start <date>] [-maturity <date>] [-address <text>] [-area <sqft>] [-rental <amount>] [-desc <text>]

  Edits the given fields of an investment; omitted flags are left
  unchanged. -value is the usual edit for tracking a holding's worth.
`
}

func (c *editInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.invType, "type", "", "New type.")
	f.StringVar(&c.invested, "invested", "", "New invested amount.")
	f.StringVar(&c.current, "value", "", "New current value.")
	f.StringVar(&c.symbol, "symbol", "", "New ticker symbol.")
	f.StringVar(&c.institution, "institution", "", "New holding institution.")
	f.StringVar(&c.interest, "rate", "", "New interest rate in percent.")
	f.StringVar(&c.start, "start", "", "New start date.")
	f.StringVar(&c.maturity, "maturity", "", "New maturity date.")
	f.StringVar(&c.address, "address", "", "New property address.")
	f.Float64Var(&c.area, "area", 0, "New property area in square feet.")
	f.StringVar(&c.rental, "rental", "", "New monthly rental income.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

// patch builds the partial update from the non-empty flags.
func (c *editInvestmentCmd) patch() (budgety.InvestmentUpdate, error) {
	var update budgety.InvestmentUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.invType != "" {
		invType, err := budgety.ParseInvestmentType(c.invType)
		if err != nil {
			return update, err
		}
		update.Type = &invType
	}
	if c.invested != "" {
		invested, err := parseAmount(c.invested)
		if err != nil {
			return update, err
		}
		update.InvestedAmount = &invested
	}
	if c.current != "" {
		value, err := parseAmount(c.current)
		if err != nil {
			return update, err
		}
		update.CurrentValue = &value
	}
	if c.symbol != "" {
		update.Symbol = &c.symbol
	}
	if c.institution != "" {
		update.InstitutionName = &c.institution
	}
	if c.interest != "" {
		rate, err := parseAmount(c.interest)
		if err != nil {
			return update, err
		}
		update.InterestRate = &rate
	}
	if c.start != "" {
		start, err := budgety.ParseDate(c.start)
		if err != nil {
			return update, err
		}
		update.StartDate = &start
	}
	if c.maturity != "" {
		maturity, err := budgety.ParseDate(c.maturity)
		if err != nil {
			return update, err
		}
		update.MaturityDate = &maturity
	}
	if c.address != "" {
		update.PropertyAddress = &c.address
	}
	if c.area > 0 {
		update.PropertyAreaSqFt = &c.area
	}
	if c.rental != "" {
		rental, err := parseAmount(c.rental)
		if err != nil {
			return update, err
		}
		update.RentalIncome = &rental
	}
	if c.description != "" {
		update.Description = &c.description
	}
	return update, nil
}

func (c *editInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	inv, err := store.UpdateInvestment(c.id, update)
	if err != nil {
		return fail(err)
	}
	if inv == nil {
		return fail(fmt.Errorf("no investment with id %q", c.id))
	}
	fmt.Printf("Updated investment %q\n", inv.Name)
	return subcommands.ExitSuccess
}
