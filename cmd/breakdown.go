package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct{}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display one list aggregated by category" }
func (*breakdownCmd) Usage() string {
	return `nwt breakdown <kind>

  Aggregates one list of the active snapshot by its categorical field (term
  for liabilities, category otherwise), descending by amount, with each
  bucket's share of the total.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an item kind is required (assets, liabilities, incomes, expenses)")
		return subcommands.ExitUsageError
	}
	kind, err := networth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	snap, ok := store.Active()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no active snapshot. Create one with 'nwt new <label>'.")
		return subcommands.ExitFailure
	}

	var title string
	var groups map[string]float64
	switch kind {
	case networth.Assets:
		title, groups = "Assets by category", snap.Data.AssetsByCategory()
	case networth.Liabilities:
		title, groups = "Liabilities by term", snap.Data.LiabilitiesByTerm()
	case networth.Incomes:
		title, groups = "Incomes by category", snap.Data.IncomesByCategory()
	case networth.Expenses:
		title, groups = "Expenses by category", snap.Data.ExpensesByCategory()
	}

	printMarkdown(renderer.BreakdownMarkdown(renderer.NewBreakdown(title, groups)))
	return subcommands.ExitSuccess
}
