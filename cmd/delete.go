package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a snapshot" }
func (*deleteCmd) Usage() string {
	return `nwt delete <id>

  Deletes the given snapshot. Deleting the active snapshot makes the first
  remaining one active.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a snapshot id is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	if err := store.DeleteSnapshot(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	saveActive(store.ActiveID())

	fmt.Printf("Deleted snapshot %s\n", id)
	return subcommands.ExitSuccess
}
