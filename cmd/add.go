package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	flags itemFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the active snapshot" }
func (*addCmd) Usage() string {
	return `nwt add <kind> -name <name> [-amount <n>] [-category <c>] [-term <t>] [-liquidity <l>]

  Adds an item to one of the four lists (assets, liabilities, incomes,
  expenses) of the active snapshot.

Usage Examples:
$ nwt add assets -name "Checking" -amount 4500 -category cash -liquidity high
$ nwt add liabilities -name "Car loan" -amount 8000 -term medium-term
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an item kind is required (assets, liabilities, incomes, expenses)")
		return subcommands.ExitUsageError
	}
	kind, err := networth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	passed, err := c.flags.reparse(f.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	// The patch builder carries the cross-kind checks, like -term on an asset.
	if _, err := c.flags.patch(kind, passed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	item, err := c.flags.item(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	stored, err := store.AddItem(item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s item %q (%s)\n", kind, stored.Label(), stored.Display(networth.ByAmount))
	return subcommands.ExitSuccess
}
