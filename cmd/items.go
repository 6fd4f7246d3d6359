package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// itemsCmd holds the flags for the 'items' subcommand.
type itemsCmd struct {
	sort     string
	dir      string
	name     string
	amount   string
	category string
	term     string
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list items of the active snapshot" }
func (*itemsCmd) Usage() string {
	return `nwt items <kind> [-sort <column>] [-dir asc|desc] [-name <substring>] [-amount <op>:<value>[:<value2>]] [-category <c1,c2>] [-term <t1,t2>]

  Lists the items of one list of the active snapshot, with their position.
  Positions are what 'edit' and 'del' take; they refer to the unsorted,
  unfiltered list.

Usage Examples:
$ nwt items assets -sort amount -dir desc
$ nwt items expenses -name rent
$ nwt items assets -amount greater:1000 -category cash,investments
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort column: name, amount, category, term or liquidity")
	f.StringVar(&c.dir, "dir", "asc", "Sort direction: asc or desc")
	f.StringVar(&c.name, "name", "", "Keep items whose name contains this, case-insensitively")
	f.StringVar(&c.amount, "amount", "", "Keep items whose amount passes <op>:<value>[:<value2>]; ops: greater, less, greater_equal, less_equal, equal, between")
	f.StringVar(&c.category, "category", "", "Keep items whose category is one of this comma-separated list")
	f.StringVar(&c.term, "term", "", "Keep liabilities whose term is one of this comma-separated list")
}

// parseAmountFilter parses the "-amount" flag value, "<op>:<value>" or
// "between:<low>:<high>".
func parseAmountFilter(s string) (*networth.AmountFilter, error) {
	parts := strings.Split(s, ":")
	op, err := networth.ParseAmountOp(parts[0])
	if err != nil {
		return nil, err
	}

	operands := 1
	if op == networth.Between {
		operands = 2
	}
	if len(parts) != operands+1 {
		return nil, fmt.Errorf("amount filter %q needs %d value(s)", parts[0], operands)
	}

	f := &networth.AmountFilter{Op: op}
	if f.Low, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return nil, fmt.Errorf("invalid amount %q", parts[1])
	}
	if op == networth.Between {
		if f.High, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return nil, fmt.Errorf("invalid amount %q", parts[2])
		}
	}
	return f, nil
}

// filter assembles the query-layer filter from the flags.
func (c *itemsCmd) filter() (networth.Filter, error) {
	filter := networth.Filter{}
	if c.name != "" {
		filter[networth.ByName] = networth.ColumnFilter{Contains: c.name}
	}
	if c.amount != "" {
		af, err := parseAmountFilter(c.amount)
		if err != nil {
			return nil, err
		}
		filter[networth.ByAmount] = networth.ColumnFilter{Amount: af}
	}
	if c.category != "" {
		filter[networth.ByCategory] = networth.ColumnFilter{Allow: strings.Split(c.category, ",")}
	}
	if c.term != "" {
		filter[networth.ByTerm] = networth.ColumnFilter{Allow: strings.Split(c.term, ",")}
	}
	return filter, nil
}

// indexedItem pairs an item with its stored position, so the position
// survives filtering and sorting and keeps pointing into the stored list.
type indexedItem struct {
	networth.Item
	index int
}

// queryItems applies the filter, then the sort, and widens to the renderer's
// item rows.
func queryItems[T networth.Item](items []T, filter networth.Filter, col networth.Column, dir networth.Direction) []renderer.ItemRow {
	indexed := make([]indexedItem, len(items))
	for i, it := range items {
		indexed[i] = indexedItem{Item: it, index: i}
	}

	kept := networth.FilterItems(indexed, filter)
	if col != "" {
		kept = networth.SortItems(kept, col, dir)
	}

	rows := make([]renderer.ItemRow, 0, len(kept))
	for _, it := range kept {
		tag := networth.Tag(it.Item)
		if tag == "" {
			tag = "-"
		}
		rows = append(rows, renderer.ItemRow{
			Index:  it.index,
			Name:   it.Label(),
			Amount: renderer.Amount(it.Value()),
			Tag:    tag,
		})
	}
	return rows
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an item kind is required (assets, liabilities, incomes, expenses)")
		return subcommands.ExitUsageError
	}
	kind, err := networth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var col networth.Column
	if c.sort != "" {
		if col, err = networth.ParseColumn(c.sort); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	dir, err := networth.ParseDirection(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	var rows []renderer.ItemRow
	switch kind {
	case networth.Assets:
		rows = queryItems(snap.Data.Assets, filter, col, dir)
	case networth.Liabilities:
		rows = queryItems(snap.Data.Liabilities, filter, col, dir)
	case networth.Incomes:
		rows = queryItems(snap.Data.Incomes, filter, col, dir)
	case networth.Expenses:
		rows = queryItems(snap.Data.Expenses, filter, col, dir)
	}

	view := renderer.Items{Title: string(kind), TagCol: "Category", Rows: rows}
	if kind == networth.Liabilities {
		view.TagCol = "Term"
	}
	printMarkdown(renderer.ItemsMarkdown(&view))
	return subcommands.ExitSuccess
}
