package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	collection string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over a collection" }
func (*queryCmd) Usage() string {
	return `bgt query -c <collection> <jsonpath>

  Evaluates a JSONPath expression against a collection and prints the
  result as JSON. Collections: wallets, transactions, budgets, savings,
  loans, investments.

  Example:
    bgt query -c transactions '$[?(@.type=="expense")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "transactions", "Collection to query.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("want exactly one JSONPath expression, got %d arguments", f.NArg()))
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	var collection interface{}
	switch c.collection {
	case "wallets":
		collection = store.Wallets()
	case "transactions":
		collection = store.Transactions()
	case "budgets":
		collection = store.Budgets()
	case "savings":
		collection = store.Savings()
	case "loans":
		collection = store.Loans()
	case "investments":
		collection = store.Investments()
	default:
		return fail(fmt.Errorf("unknown collection %q", c.collection))
	}

	// jsonpath operates on generic JSON values, so round-trip through the
	// persisted encoding.
	raw, err := json.Marshal(collection)
	if err != nil {
		return fail(err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fail(err)
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		return fail(fmt.Errorf("invalid jsonpath %q: %w", f.Arg(0), err))
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
