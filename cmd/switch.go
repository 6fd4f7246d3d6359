package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// switchCmd holds the flags for the 'switch' subcommand.
type switchCmd struct{}

func (*switchCmd) Name() string     { return "switch" }
func (*switchCmd) Synopsis() string { return "make another snapshot active" }
func (*switchCmd) Usage() string {
	return `nwt switch <id>

  Makes the given snapshot the active one. Item and report commands operate
  on the active snapshot.
`
}

func (c *switchCmd) SetFlags(f *flag.FlagSet) {}

func (c *switchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := store.SwitchActive(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	saveActive(id)

	snap, _ := store.Active()
	fmt.Printf("Switched to snapshot %s %q\n", snap.ID, snap.Label)
	return subcommands.ExitSuccess
}
