package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// ratiosCmd holds the flags for the 'ratios' subcommand.
type ratiosCmd struct{}

func (*ratiosCmd) Name() string     { return "ratios" }
func (*ratiosCmd) Synopsis() string { return "display the active snapshot health ratios" }
func (*ratiosCmd) Usage() string {
	return `nwt ratios

  Displays the five financial health ratios of the active snapshot, each
  with a health band. See 'nwt topic reports' for their definitions.
`
}

func (c *ratiosCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratiosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RatiosMarkdown(renderer.NewRatios(snap.Label, snap.Data.Ratios())))
	return subcommands.ExitSuccess
}
