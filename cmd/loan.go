package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budgety"
	"github.com/etnz/budgety/renderer"
	"github.com/google/subcommands"
)

type addLoanCmd struct {
	loanType    string
	amount      string
	person      string
	description string
	due         string
	interest    string
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "record money lent or borrowed" }
func (*addLoanCmd) Usage() string {
	return `bgt add-loan -person <name> -amount <amount> [-type lent|borrowed] [-due <date>] [-rate <percent>] [-desc <text>]

  Records a loan. Repayments are tracked with "bgt pay-loan"; a fully
  repaid loan is marked paid automatically.
`
}

func (c *addLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loanType, "type", "lent", "Loan type (lent or borrowed).")
	f.StringVar(&c.amount, "amount", "", "Loan principal.")
	f.StringVar(&c.person, "person", "", "The other party's name.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.due, "due", "", "Optional due date.")
	f.StringVar(&c.interest, "rate", "0", "Annual interest rate in percent.")
}

func (c *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.person == "" {
		return fail(fmt.Errorf("missing required -person"))
	}
	loanType, err := budgety.ParseLoanType(c.loanType)
	if err != nil {
		return fail(err)
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	rate, err := parseAmount(c.interest)
	if err != nil {
		return fail(err)
	}
	var due *budgety.Date
	if c.due != "" {
		d, err := budgety.ParseDate(c.due)
		if err != nil {
			return fail(err)
		}
		due = &d
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	loan, err := store.AddLoan(budgety.Loan{
		Type:         loanType,
		Amount:       amount,
		PersonName:   c.person,
		Description:  c.description,
		DueDate:      due,
		InterestRate: rate,
		Status:       budgety.Active,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s with %s (%s)\n", loan.Type, loan.Amount, loan.PersonName, loan.ID)
	return subcommands.ExitSuccess
}

type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list loans" }
func (*loansCmd) Usage() string {
	return `bgt loans

  Lists every loan with its repayment state.
`
}
func (*loansCmd) SetFlags(f *flag.FlagSet) {}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Loans(store.Loans()))
	return subcommands.ExitSuccess
}

type payLoanCmd struct {
	id     string
	amount string
}

func (*payLoanCmd) Name() string     { return "pay-loan" }
func (*payLoanCmd) Synopsis() string { return "record a payment against a loan" }
func (*payLoanCmd) Usage() string {
	return `bgt pay-loan -id <id> -amount <amount>

  Adds a payment to the loan. When payments reach the principal, the loan
  is marked paid.
`
}

func (c *payLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan id.")
	f.StringVar(&c.amount, "amount", "", "Payment amount.")
}

func (c *payLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	loan, err := store.RecordLoanPayment(c.id, amount)
	if err != nil {
		return fail(err)
	}
	if loan == nil {
		return fail(fmt.Errorf("no loan with id %q", c.id))
	}
	fmt.Printf("Paid %s on loan with %s: %s of %s (%s)\n",
		amount, loan.PersonName, loan.PaidAmount, loan.Amount, loan.Status)
	return subcommands.ExitSuccess
}

type deleteLoanCmd struct {
	id string
}

func (*deleteLoanCmd) Name() string     { return "delete-loan" }
func (*deleteLoanCmd) Synopsis() string { return "delete a loan" }
func (*deleteLoanCmd) Usage() string {
	return `bgt delete-loan -id <id>

  Deletes a loan and its payment history.
`
}

func (c *deleteLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan id.")
}

func (c *deleteLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing required -id"))
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.DeleteLoan(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted loan %s\n", c.id)
	return subcommands.ExitSuccess
}

type editLoanCmd struct {
	id          string
	loanType    string
	amount      string
	person      string
	description string
	due         string
	clearDue    bool
	interest    string
	status      string
}

func (*editLoanCmd) Name() string     { return "edit-loan" }
func (*editLoanCmd) Synopsis() string { return "edit an existing loan" }
func (*editLoanCmd) Usage() string {
	return `bgt edit-loan -id <id> [-type lent|borrowed] [-amount <amount>] [-person <name>] [-due <date> | -no-due] [-rate <percent>] [-status active|paid|overdue] [-desc <text>]

  Edits the given fields of a loan; omitted flags are left unchanged.
  -no-due removes the due date. Prefer "bgt pay-loan" for recording
  payments; -status is for manual corrections like marking overdue.
`
}

func (c *editLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan id.")
	f.StringVar(&c.loanType, "type", "", "New type (lent or borrowed).")
	f.StringVar(&c.amount, "amount", "", "New principal.")
	f.StringVar(&c.person, "person", "", "New party name.")
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.due, "due", "", "New due date.")
	f.BoolVar(&c.clearDue, "no-due", false, "Remove the due date.")
	f.StringVar(&c.interest, "rate", "", "New interest rate in percent.")
	f.StringVar(&c.status, "status", "", "New status (active, paid, overdue).")
}

// patch builds the partial update from the non-empty flags.
func (c *editLoanCmd) patch() (budgety.LoanUpdate, error) {
	var update budgety.LoanUpdate
	if c.loanType != "" {
		loanType, err := budgety.ParseLoanType(c.loanType)
		if err != nil {
			return update, err
		}
		update.Type = &loanType
	}
	if c.amount != "" {
		amount, err := parseAmount(c.amount)
		if err != nil {
			return update, err
		}
		update.Amount = &amount
	}
	if c.person != "" {
		update.PersonName = &c.person
	}
	if c.description != "" {
		update.Description = &c.description
	}
	switch {
	case c.clearDue:
		update.ClearDueDate = true
	case c.due != "":
		due, err := budgety.ParseDate(c.due)
		if err != nil {
			return update, err
		}
		update.DueDate = &due
	}
	if c.interest != "" {
		rate, err := parseAmount(c.interest)
		if err != nil {
			return update, err
		}
		update.InterestRate = &rate
	}
	if c.status != "" {
		status, err := budgety.ParseLoanStatus(c.status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}
	return update, nil
}

func (c *editLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	loan, err := store.UpdateLoan(c.id, update)
	if err != nil {
		return fail(err)
	}
	if loan == nil {
		return fail(fmt.Errorf("no loan with id %q", c.id))
	}
	fmt.Printf("Updated loan with %s\n", loan.PersonName)
	return subcommands.ExitSuccess
}
