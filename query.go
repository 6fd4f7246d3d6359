package networth

import (
	"fmt"
	"sort"
	"strings"
)

// This file is the query layer: sort and predicate-filter operations over
// item lists. Both produce new slices and never mutate their input.

// Record is the read-only view of an item the query layer operates on.
type Record interface {
	// Label returns the display name.
	Label() string
	// Value returns the amount.
	Value() float64
	// Display returns the display string for a column, "" when missing.
	Display(Column) string
}

// Column identifies a sortable and filterable item field.
type Column string

const (
	ByName      Column = "name"
	ByAmount    Column = "amount"
	ByCategory  Column = "category"
	ByTerm      Column = "term"
	ByLiquidity Column = "liquidity"
)

// ParseColumn parses a string into a Column.
func ParseColumn(s string) (Column, error) {
	switch Column(s) {
	case ByName, ByAmount, ByCategory, ByTerm, ByLiquidity:
		return Column(s), nil
	default:
		return "", fmt.Errorf("unknown column: %q", s)
	}
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Asc, Desc:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// SortItems returns the items ordered by the given column. The sort is
// stable: ties preserve the original relative order. Text columns compare
// case-insensitively on the display value, with a missing value sorting as
// the empty string; the amount column compares numerically.
func SortItems[T Record](items []T, col Column, dir Direction) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	less := func(a, b T) bool {
		if col == ByAmount {
			return a.Value() < b.Value()
		}
		return strings.ToLower(a.Display(col)) < strings.ToLower(b.Display(col))
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// AmountOp is a comparison operator for the amount column.
type AmountOp string

const (
	Greater      AmountOp = "greater"
	Less         AmountOp = "less"
	GreaterEqual AmountOp = "greater_equal"
	LessEqual    AmountOp = "less_equal"
	Equal        AmountOp = "equal"
	Between      AmountOp = "between"
)

// ParseAmountOp parses a string into an AmountOp.
func ParseAmountOp(s string) (AmountOp, error) {
	switch AmountOp(s) {
	case Greater, Less, GreaterEqual, LessEqual, Equal, Between:
		return AmountOp(s), nil
	default:
		return "", fmt.Errorf("unknown amount operator: %q", s)
	}
}

// AmountFilter compares an amount against one or two operands. Low is the
// single operand for every operator except Between, which retains Low..High
// inclusive.
type AmountFilter struct {
	Op   AmountOp
	Low  float64
	High float64
}

func (f AmountFilter) matches(v float64) bool {
	switch f.Op {
	case Greater:
		return v > f.Low
	case Less:
		return v < f.Low
	case GreaterEqual:
		return v >= f.Low
	case LessEqual:
		return v <= f.Low
	case Equal:
		return v == f.Low
	case Between:
		return v >= f.Low && v <= f.High
	default:
		return true
	}
}

// ColumnFilter is the set of predicates active on one column. Zero-value
// members impose no constraint; active members compose with AND.
type ColumnFilter struct {
	// Contains matches case-insensitively against the column display string.
	Contains string
	// Amount applies a numeric comparison; meaningful on the amount column.
	Amount *AmountFilter
	// Allow is an explicit allow-list of raw categorical values.
	Allow []string
}

func (f ColumnFilter) matches(it Record, col Column) bool {
	if f.Contains != "" {
		display := strings.ToLower(it.Display(col))
		if !strings.Contains(display, strings.ToLower(f.Contains)) {
			return false
		}
	}
	if f.Amount != nil && col == ByAmount {
		if !f.Amount.matches(it.Value()) {
			return false
		}
	}
	if len(f.Allow) > 0 {
		raw := it.Display(col)
		allowed := false
		for _, v := range f.Allow {
			if raw == v {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	return true
}

// Filter maps columns to their active predicates. A missing column imposes
// no constraint; an item is retained only when every column's predicates
// pass.
type Filter map[Column]ColumnFilter

// FilterItems returns the subset of items matching every active predicate.
func FilterItems[T Record](items []T, filter Filter) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		retain := true
		for col, f := range filter {
			if !f.matches(it, col) {
				retain = false
				break
			}
		}
		if retain {
			kept = append(kept, it)
		}
	}
	return kept
}
