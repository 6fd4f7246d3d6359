package renderer

import (
	"sort"
)

// BreakdownRow is one category bucket of a breakdown report.
type BreakdownRow struct {
	Key    string
	Amount string
	Share  string
}

// Breakdown is the view model for a category breakdown report.
type Breakdown struct {
	Title string
	Total string
	Rows  []BreakdownRow
}

// NewBreakdown formats a category aggregate for display. Buckets are
// ordered by descending amount, ties alphabetically, so pie-chart style
// consumption reads top-down.
func NewBreakdown(title string, groups map[string]float64) *Breakdown {
	var total float64
	keys := make([]string, 0, len(groups))
	for k, v := range groups {
		keys = append(keys, k)
		total += v
	}
	sort.Slice(keys, func(i, j int) bool {
		if groups[keys[i]] != groups[keys[j]] {
			return groups[keys[i]] > groups[keys[j]]
		}
		return keys[i] < keys[j]
	})

	b := &Breakdown{Title: title, Total: Amount(total)}
	for _, k := range keys {
		b.Rows = append(b.Rows, BreakdownRow{
			Key:    k,
			Amount: Amount(groups[k]),
			Share:  Share(groups[k], total),
		})
	}
	return b
}

// BreakdownMarkdown renders a breakdown report to a markdown string.
func BreakdownMarkdown(b *Breakdown) string {
	return renderTemplate("breakdown", "breakdown.md", nil, b)
}
