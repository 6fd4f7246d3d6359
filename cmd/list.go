package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	sort string
	dir  string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all snapshots" }
func (*listCmd) Usage() string {
	return `nwt list [-sort date|label] [-dir asc|desc]

  Lists all snapshots with their id, creation date, label and item count.
  The active snapshot is marked with a star.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "date", "Display order: date or label")
	f.StringVar(&c.dir, "dir", "asc", "Display direction: asc or desc")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := networth.ParseSnapshotOrder(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	dir, err := networth.ParseDirection(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	doc := store.Document()
	if len(doc.Snapshots) == 0 {
		fmt.Println("No snapshots yet. Create one with 'nwt new <label>'.")
		return subcommands.ExitSuccess
	}

	active := store.ActiveID()
	for _, snap := range doc.Sorted(order, dir) {
		mark := " "
		if snap.ID == active {
			mark = "*"
		}
		fmt.Printf("%s %s  %s  %q (%d items)\n",
			mark, snap.ID, snap.CreatedAt.Format("2006-01-02"), snap.Label, snap.Data.Count())
	}
	return subcommands.ExitSuccess
}
