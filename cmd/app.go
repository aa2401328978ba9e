// Package cmd implements the CLI application to manage budgety data.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/budgety"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addWalletCmd{}, "wallets")
	c.Register(&walletsCmd{}, "wallets")
	c.Register(&editWalletCmd{}, "wallets")
	c.Register(&deleteWalletCmd{}, "wallets")

	c.Register(&addTxCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&editTxCmd{}, "transactions")
	c.Register(&deleteTxCmd{}, "transactions")

	c.Register(&addBudgetCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")
	c.Register(&editBudgetCmd{}, "budgets")
	c.Register(&deleteBudgetCmd{}, "budgets")

	c.Register(&addSavingCmd{}, "savings")
	c.Register(&savingsCmd{}, "savings")
	c.Register(&editSavingCmd{}, "savings")
	c.Register(&saveAddCmd{}, "savings")
	c.Register(&deleteSavingCmd{}, "savings")

	c.Register(&addLoanCmd{}, "loans")
	c.Register(&loansCmd{}, "loans")
	c.Register(&editLoanCmd{}, "loans")
	c.Register(&payLoanCmd{}, "loans")
	c.Register(&deleteLoanCmd{}, "loans")

	c.Register(&addInvestmentCmd{}, "investments")
	c.Register(&investmentsCmd{}, "investments")
	c.Register(&editInvestmentCmd{}, "investments")
	c.Register(&deleteInvestmentCmd{}, "investments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&resetCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to the XDG config chain.")

// appConfig is the configuration resolved for this invocation.
var appConfig Config

// OpenStore resolves the configuration and opens the store over the
// configured backend. The returned closer releases backend resources.
func OpenStore() (*budgety.Store, func() error, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, nil, err
	}
	appConfig = cfg

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	switch cfg.Backend {
	case BackendSQLite:
		backend, err := budgety.OpenSQLite(filepath.Join(cfg.DataDir, "budgety.db"))
		if err != nil {
			return nil, nil, err
		}
		return budgety.NewStore(backend, logger), backend.Close, nil
	default:
		backend, err := budgety.NewDirBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return budgety.NewStore(backend, logger), func() error { return nil }, nil
	}
}

// parseAmount parses a required monetary flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("missing required -amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative, got %s", s)
	}
	return d, nil
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
