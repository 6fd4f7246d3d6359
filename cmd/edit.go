package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	flags itemFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an item of the active snapshot" }
func (*editCmd) Usage() string {
	return `nwt edit <kind> <index> [-name <name>] [-amount <n>] [-category <c>] [-term <t>] [-liquidity <l>]

  Edits the item at the given position, as printed by 'nwt items'. Only the
  passed flags change; a categorical flag passed empty clears the field.

Usage Examples:
$ nwt edit assets 0 -amount 4700
$ nwt edit assets 0 -category ""
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: an item kind and an index are required")
		return subcommands.ExitUsageError
	}
	kind, err := networth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid item index %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}
	passed, err := c.flags.reparse(f.Args()[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(passed) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, pass at least one flag")
		return subcommands.ExitUsageError
	}
	patch, err := c.flags.patch(kind, passed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	stored, err := store.UpdateItem(kind, index, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s item %d: %q (%s)\n", kind, index, stored.Label(), stored.Display(networth.ByAmount))
	return subcommands.ExitSuccess
}
