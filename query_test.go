package networth

import (
	"slices"
	"testing"
)

func names[T Record](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

func TestSortItems(t *testing.T) {
	items := []Asset{
		asset("banana", 3, Investments, Low),
		asset("Apple", 1, Cash, High),
		asset("cherry", 2, Cash, Medium),
	}

	t.Run("by name is case-insensitive", func(t *testing.T) {
		got := names(SortItems(items, ByName, Asc))
		want := []string{"Apple", "banana", "cherry"}
		if !slices.Equal(got, want) {
			t.Errorf("SortItems(name, asc) = %v, want %v", got, want)
		}
	})

	t.Run("by amount is numeric", func(t *testing.T) {
		got := names(SortItems(items, ByAmount, Desc))
		want := []string{"banana", "cherry", "Apple"}
		if !slices.Equal(got, want) {
			t.Errorf("SortItems(amount, desc) = %v, want %v", got, want)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		SortItems(items, ByName, Asc)
		if items[0].Name != "banana" {
			t.Errorf("input order changed, got %v first", items[0].Name)
		}
	})

	t.Run("ties preserve original order", func(t *testing.T) {
		same := []Asset{
			asset("first", 10, Cash, High),
			asset("second", 10, Cash, High),
			asset("third", 10, Cash, High),
		}
		got := names(SortItems(same, ByAmount, Asc))
		want := []string{"first", "second", "third"}
		if !slices.Equal(got, want) {
			t.Errorf("stable sort broke tie order: %v", got)
		}
		got = names(SortItems(same, ByAmount, Desc))
		if !slices.Equal(got, want) {
			t.Errorf("stable desc sort broke tie order: %v", got)
		}
	})

	t.Run("missing value sorts as empty string", func(t *testing.T) {
		mixed := []Asset{
			asset("classified", 1, Cash, High),
			asset("unclassified", 1, "", Medium),
		}
		got := names(SortItems(mixed, ByCategory, Asc))
		want := []string{"unclassified", "classified"}
		if !slices.Equal(got, want) {
			t.Errorf("SortItems(category, asc) = %v, want %v", got, want)
		}
	})
}

func TestSortItems_DescIsReversedAsc(t *testing.T) {
	// for unique amounts, sorting desc equals sorting asc then reversing
	items := []Expense{
		expense("a", 5, Essential),
		expense("b", 1, Variable),
		expense("c", 9, Discretionary),
		expense("d", 3, Essential),
	}
	asc := names(SortItems(items, ByAmount, Asc))
	desc := names(SortItems(items, ByAmount, Desc))
	slices.Reverse(asc)
	if !slices.Equal(asc, desc) {
		t.Errorf("reversed asc %v != desc %v", asc, desc)
	}
}

func TestFilterItems(t *testing.T) {
	items := []Asset{
		asset("Checking account", 1200, Cash, High),
		asset("Savings account", 8000, Cash, High),
		asset("Brokerage", 15000, Investments, Medium),
		asset("House", 250000, Property, Low),
	}

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		got := FilterItems(items, Filter{ByName: {Contains: "ACCOUNT"}})
		if len(got) != 2 {
			t.Fatalf("FilterItems(name~account) kept %d items, want 2", len(got))
		}
	})

	t.Run("amount operators", func(t *testing.T) {
		tests := []struct {
			name string
			f    AmountFilter
			want int
		}{
			{"greater", AmountFilter{Op: Greater, Low: 8000}, 2},
			{"greater_equal", AmountFilter{Op: GreaterEqual, Low: 8000}, 3},
			{"less", AmountFilter{Op: Less, Low: 8000}, 1},
			{"less_equal", AmountFilter{Op: LessEqual, Low: 8000}, 2},
			{"equal", AmountFilter{Op: Equal, Low: 15000}, 1},
			{"between", AmountFilter{Op: Between, Low: 1000, High: 10000}, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := tt.f
				got := FilterItems(items, Filter{ByAmount: {Amount: &f}})
				if len(got) != tt.want {
					t.Errorf("kept %d items, want %d", len(got), tt.want)
				}
			})
		}
	})

	t.Run("allow-list on categorical column", func(t *testing.T) {
		got := FilterItems(items, Filter{ByCategory: {Allow: []string{"cash", "property"}}})
		if len(got) != 3 {
			t.Fatalf("kept %d items, want 3", len(got))
		}
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		f := AmountFilter{Op: Greater, Low: 2000}
		got := FilterItems(items, Filter{
			ByName:     {Contains: "account"},
			ByAmount:   {Amount: &f},
			ByCategory: {Allow: []string{"cash"}},
		})
		if len(got) != 1 || got[0].Name != "Savings account" {
			t.Fatalf("FilterItems() = %v, want only Savings account", names(got))
		}
	})

	t.Run("empty filter keeps everything", func(t *testing.T) {
		if got := FilterItems(items, Filter{}); len(got) != len(items) {
			t.Errorf("kept %d items, want %d", len(got), len(items))
		}
	})

	t.Run("idempotent under a constant filter", func(t *testing.T) {
		filter := Filter{ByName: {Contains: "a"}}
		once := FilterItems(items, filter)
		twice := FilterItems(once, filter)
		if !slices.Equal(names(once), names(twice)) {
			t.Errorf("filtering twice changed the result: %v then %v", names(once), names(twice))
		}
	})
}

func TestParseQueryArgs(t *testing.T) {
	if _, err := ParseColumn("weight"); err == nil {
		t.Error("ParseColumn(weight) expected an error")
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(up) expected an error")
	}
	if _, err := ParseAmountOp("near"); err == nil {
		t.Error("ParseAmountOp(near) expected an error")
	}
	if op, err := ParseAmountOp("greater_equal"); err != nil || op != GreaterEqual {
		t.Errorf("ParseAmountOp(greater_equal) = %v, %v", op, err)
	}
}
