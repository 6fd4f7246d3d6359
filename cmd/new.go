package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// newCmd holds the flags for the 'new' subcommand.
type newCmd struct{}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a snapshot and make it active" }
func (*newCmd) Usage() string {
	return `nwt new <label>

  Creates an empty snapshot with the given label and makes it the active one.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	label := strings.Join(f.Args(), " ")
	if strings.TrimSpace(label) == "" {
		fmt.Fprintln(os.Stderr, "Error: a snapshot label is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	snap, err := store.CreateSnapshot(label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	saveActive(snap.ID)

	fmt.Printf("Created snapshot %s %q, now active\n", snap.ID, snap.Label)
	return subcommands.ExitSuccess
}
