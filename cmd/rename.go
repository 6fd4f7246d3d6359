package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// renameCmd holds the flags for the 'rename' subcommand.
type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "relabel a snapshot" }
func (*renameCmd) Usage() string {
	return `nwt rename <id> <label>

  Replaces the label of the given snapshot.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: a snapshot id and a new label are required")
		return subcommands.ExitUsageError
	}
	id, label := f.Arg(0), strings.Join(f.Args()[1:], " ")

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.RenameSnapshot(id, label); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Renamed snapshot %s to %q\n", id, strings.TrimSpace(label))
	return subcommands.ExitSuccess
}
