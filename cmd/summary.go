package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the active snapshot totals" }
func (*summaryCmd) Usage() string {
	return `nwt summary

  Displays the headline totals of the active snapshot: total assets, total
  liabilities, net worth, total income, total expenses and savings.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(snap.Label, snap.Data.Summary())))
	return subcommands.ExitSuccess
}
