package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// dupCmd holds the flags for the 'dup' subcommand.
type dupCmd struct{}

func (*dupCmd) Name() string     { return "dup" }
func (*dupCmd) Synopsis() string { return "duplicate a snapshot and make the copy active" }
func (*dupCmd) Usage() string {
	return `nwt dup [<id>]

  Duplicates the given snapshot (the active one by default) with all its
  items, and makes the copy active. This is the usual way to start a new
  month from the previous one.
`
}

func (c *dupCmd) SetFlags(f *flag.FlagSet) {}

func (c *dupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	id := store.ActiveID()
	if f.NArg() > 0 {
		id = f.Arg(0)
	}
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: no snapshot to duplicate")
		return subcommands.ExitUsageError
	}

	snap, err := store.DuplicateSnapshot(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error duplicating snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	saveActive(snap.ID)

	fmt.Printf("Created snapshot %s %q, now active\n", snap.ID, snap.Label)
	return subcommands.ExitSuccess
}
