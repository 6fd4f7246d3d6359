// Package agent turns a snapshot into text an AI collaborator can reason
// about, and drives the optional call to the model.
package agent

import (
	"fmt"
	"strings"

	"github.com/etnz/networth"
)

// Context renders a snapshot as a flat labeled text block. The layout is
// deliberately plain text, not markdown: it is prompt material, and it is
// also the offline fallback answer when no model is reachable.
func Context(label string, data networth.Data) string {
	var b strings.Builder
	s := data.Summary()
	r := data.Ratios()

	fmt.Fprintf(&b, "Snapshot: %s\n\n", label)

	fmt.Fprintf(&b, "Summary:\n")
	fmt.Fprintf(&b, "  total assets: %.2f\n", s.TotalAssets)
	fmt.Fprintf(&b, "  total liabilities: %.2f\n", s.TotalLiabilities)
	fmt.Fprintf(&b, "  net worth: %.2f\n", s.NetWorth)
	fmt.Fprintf(&b, "  total income: %.2f\n", s.TotalIncome)
	fmt.Fprintf(&b, "  total expenses: %.2f\n", s.TotalExpenses)
	fmt.Fprintf(&b, "  savings: %.2f\n\n", s.Savings)

	fmt.Fprintf(&b, "Ratios:\n")
	fmt.Fprintf(&b, "  basic liquidity: %.1f months\n", r.BasicLiquidity)
	fmt.Fprintf(&b, "  debt to asset: %.1f%%\n", r.DebtToAsset)
	fmt.Fprintf(&b, "  solvency: %.1f%%\n", r.Solvency)
	fmt.Fprintf(&b, "  savings rate: %.1f%%\n", r.SavingsRate)
	fmt.Fprintf(&b, "  liquid assets to net worth: %.1f%%\n\n", r.LiquidToNetWorth)

	writeItems(&b, "Assets", asRecords(data.Assets))
	writeItems(&b, "Liabilities", asRecords(data.Liabilities))
	writeItems(&b, "Incomes", asRecords(data.Incomes))
	writeItems(&b, "Expenses", asRecords(data.Expenses))

	return b.String()
}

func asRecords[T networth.Item](items []T) []networth.Item {
	out := make([]networth.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func writeItems(b *strings.Builder, section string, items []networth.Item) {
	fmt.Fprintf(b, "%s:\n", section)
	if len(items) == 0 {
		fmt.Fprintf(b, "  (none)\n\n")
		return
	}
	for _, it := range items {
		tag := networth.Tag(it)
		if tag == "" {
			tag = "unclassified"
		}
		fmt.Fprintf(b, "  - %s: %.2f (%s)\n", it.Label(), it.Value(), tag)
	}
	fmt.Fprintf(b, "\n")
}
