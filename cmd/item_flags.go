package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/networth"
)

// itemFlags is the flag set shared by the add and edit subcommands. Which
// flags apply depends on the item kind; the categorical ones are validated
// against the kind at build time.
type itemFlags struct {
	name      string
	amount    float64
	category  string
	term      string
	liquidity string
}

func (c *itemFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.Float64Var(&c.amount, "amount", 0, "Item amount, a plain number")
	f.StringVar(&c.category, "category", "", "Category (assets, incomes, expenses)")
	f.StringVar(&c.term, "term", "", "Repayment term (liabilities)")
	f.StringVar(&c.liquidity, "liquidity", "", "Liquidity (assets)")
}

// reparse parses args into the flag set once more. The standard flag parser
// stops at the first positional argument, and item commands put the kind
// (and index) first, so the flags after them need a second pass. It returns
// the set of flag names the user actually passed.
func (c *itemFlags) reparse(args []string) (map[string]bool, error) {
	fs := flag.NewFlagSet("item", flag.ContinueOnError)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	passed := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { passed[f.Name] = true })
	return passed, nil
}

// item builds a new item of the given kind from the flags.
func (c *itemFlags) item(kind networth.Kind) (networth.Item, error) {
	switch kind {
	case networth.Assets:
		category, err := networth.ParseAssetCategory(c.category)
		if err != nil {
			return nil, err
		}
		liquidity, err := networth.ParseLiquidity(c.liquidity)
		if err != nil {
			return nil, err
		}
		return networth.Asset{Name: c.name, Amount: c.amount, Category: category, Liquidity: liquidity}, nil
	case networth.Liabilities:
		term, err := networth.ParseTerm(c.term)
		if err != nil {
			return nil, err
		}
		return networth.Liability{Name: c.name, Amount: c.amount, Term: term}, nil
	case networth.Incomes:
		category, err := networth.ParseIncomeCategory(c.category)
		if err != nil {
			return nil, err
		}
		return networth.Income{Name: c.name, Amount: c.amount, Category: category}, nil
	case networth.Expenses:
		category, err := networth.ParseExpenseCategory(c.category)
		if err != nil {
			return nil, err
		}
		return networth.Expense{Name: c.name, Amount: c.amount, Category: category}, nil
	default:
		return nil, fmt.Errorf("unknown item kind: %q", kind)
	}
}

// patch builds an item patch from the flags the user actually passed, so an
// omitted flag leaves the field unchanged while '-category ""' clears it.
func (c *itemFlags) patch(kind networth.Kind, passed map[string]bool) (networth.ItemPatch, error) {
	var p networth.ItemPatch
	if passed["name"] {
		p.Name = networth.SetField(c.name)
	}
	if passed["amount"] {
		p.Amount = networth.SetAmount(c.amount)
	}
	if passed["category"] {
		var err error
		switch kind {
		case networth.Assets:
			_, err = networth.ParseAssetCategory(c.category)
		case networth.Incomes:
			_, err = networth.ParseIncomeCategory(c.category)
		case networth.Expenses:
			_, err = networth.ParseExpenseCategory(c.category)
		case networth.Liabilities:
			err = fmt.Errorf("liabilities have no category, use -term")
		}
		if err != nil {
			return networth.ItemPatch{}, err
		}
		p.Category = networth.SetField(c.category)
	}
	if passed["term"] {
		if kind != networth.Liabilities {
			return networth.ItemPatch{}, fmt.Errorf("only liabilities have a term")
		}
		if _, err := networth.ParseTerm(c.term); err != nil {
			return networth.ItemPatch{}, err
		}
		p.Term = networth.SetField(c.term)
	}
	if passed["liquidity"] {
		if kind != networth.Assets {
			return networth.ItemPatch{}, fmt.Errorf("only assets have a liquidity")
		}
		if _, err := networth.ParseLiquidity(c.liquidity); err != nil {
			return networth.ItemPatch{}, err
		}
		p.Liquidity = networth.SetField(c.liquidity)
	}
	return p, nil
}
