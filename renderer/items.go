package renderer

import (
	"github.com/etnz/networth"
)

// ItemRow is one item line of an items report.
type ItemRow struct {
	Index  int
	Name   string
	Amount string
	Tag    string
}

// Items is the view model for an items table.
type Items struct {
	Title  string
	TagCol string
	Rows   []ItemRow
}

// tagColumn names the categorical column of an item kind.
func tagColumn(kind networth.Kind) string {
	if kind == networth.Liabilities {
		return "Term"
	}
	return "Category"
}

// NewItems formats an item list for display. Indices refer to the list as
// given, which is what the store expects for edit and delete.
func NewItems(kind networth.Kind, items []networth.Item) *Items {
	view := &Items{Title: string(kind), TagCol: tagColumn(kind)}
	for i, it := range items {
		tag := networth.Tag(it)
		if tag == "" {
			tag = "-"
		}
		view.Rows = append(view.Rows, ItemRow{
			Index:  i,
			Name:   it.Label(),
			Amount: Amount(it.Value()),
			Tag:    tag,
		})
	}
	return view
}

// ItemsMarkdown renders an items table to a markdown string.
func ItemsMarkdown(v *Items) string {
	return renderTemplate("items", "items.md", nil, v)
}
