package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the document from a JSON payload" }
func (*importCmd) Usage() string {
	return `nwt import [-i <file>]

  Replaces the whole document, all snapshots included, with the JSON payload
  read from the file or from stdin. The payload is validated first; a
  malformed payload leaves the stored document untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to import from. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.Import(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing document: %v\n", err)
		return subcommands.ExitFailure
	}
	saveActive(store.ActiveID())

	doc := store.Document()
	fmt.Printf("Imported %d snapshot(s)\n", len(doc.Snapshots))
	return subcommands.ExitSuccess
}
