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

// delCmd holds the flags for the 'del' subcommand.
type delCmd struct{}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete an item of the active snapshot" }
func (*delCmd) Usage() string {
	return `nwt del <kind> <index>

  Deletes the item at the given position, as printed by 'nwt items'. Items
  after it shift down by one.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
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

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.DeleteItem(kind, index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s item %d\n", kind, index)
	return subcommands.ExitSuccess
}
