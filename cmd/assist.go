package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/networth/agent"
	"github.com/google/subcommands"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	timeout time.Duration
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI advisor about the active snapshot" }
func (*assistCmd) Usage() string {
	return `nwt assist [-t <timeout>] [-offline] <question>

  Sends the active snapshot, its totals and ratios to the model together
  with the question, and prints the answer. Without a reachable model (or
  with -offline) it prints the snapshot context and a local analysis
  instead.

  The model call needs a GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "t", 30*time.Second, "Bound on the model call")
	f.BoolVar(&c.offline, "offline", false, "Skip the model, print the local analysis")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.Join(f.Args(), " ")

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	snap, ok := store.Active()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no active snapshot. Create one with 'nwt new <label>'.")
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor()
	advisor.Timeout = c.timeout

	if c.offline {
		printMarkdown(advisor.Fallback(snap.Label, snap.Data))
		return subcommands.ExitSuccess
	}
	if strings.TrimSpace(question) == "" {
		question = "How is my financial health, and what should I improve first?"
	}

	// A client failure is not fatal: the advisor degrades to the local
	// analysis on a nil client.
	client, err := agent.NewClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, answering offline\n", err)
	}

	printMarkdown(advisor.Advise(ctx, client, snap.Label, snap.Data, question))
	return subcommands.ExitSuccess
}
