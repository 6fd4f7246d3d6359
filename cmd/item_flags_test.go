package cmd

import (
	"testing"

	"github.com/etnz/networth"
)

func TestParseAmountFilter(t *testing.T) {
	tests := []struct {
		in      string
		op      networth.AmountOp
		low     float64
		high    float64
		wantErr bool
	}{
		{in: "greater:100", op: networth.Greater, low: 100},
		{in: "less_equal:2500.5", op: networth.LessEqual, low: 2500.5},
		{in: "between:10:20", op: networth.Between, low: 10, high: 20},
		{in: "between:10", wantErr: true},
		{in: "greater:10:20", wantErr: true},
		{in: "greater:ten", wantErr: true},
		{in: "bogus:10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := parseAmountFilter(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAmountFilter(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAmountFilter(%q): %v", tt.in, err)
			}
			if f.Op != tt.op || f.Low != tt.low || f.High != tt.high {
				t.Errorf("parseAmountFilter(%q) = %+v", tt.in, f)
			}
		})
	}
}

func TestItemFlagsReparse(t *testing.T) {
	var c itemFlags
	passed, err := c.reparse([]string{"-name", "Checking", "-amount", "4500"})
	if err != nil {
		t.Fatal(err)
	}
	if !passed["name"] || !passed["amount"] || passed["category"] {
		t.Errorf("passed = %v", passed)
	}
	if c.name != "Checking" || c.amount != 4500 {
		t.Errorf("flags = %+v", c)
	}

	if _, err := c.reparse([]string{"-name", "X", "stray"}); err == nil {
		t.Error("stray positional argument should fail")
	}
}

func TestItemFlagsItem(t *testing.T) {
	c := itemFlags{name: "Checking", amount: 4500, category: "cash", liquidity: "high"}
	it, err := c.item(networth.Assets)
	if err != nil {
		t.Fatal(err)
	}
	asset, ok := it.(networth.Asset)
	if !ok {
		t.Fatalf("item is %T, want Asset", it)
	}
	if asset.Category != networth.Cash || asset.Liquidity != networth.High {
		t.Errorf("asset = %+v", asset)
	}

	c = itemFlags{name: "X", category: "bogus"}
	if _, err := c.item(networth.Assets); err == nil {
		t.Error("unknown category should fail")
	}
}

func TestItemFlagsPatch(t *testing.T) {
	c := itemFlags{category: ""}
	p, err := c.patch(networth.Assets, map[string]bool{"category": true})
	if err != nil {
		t.Fatal(err)
	}
	// An explicitly passed empty category clears the field.
	if got := p.Category.Apply("cash"); got != "" {
		t.Errorf("cleared category = %q, want empty", got)
	}

	// An omitted flag leaves the field unchanged.
	if got := p.Name.Apply("Checking"); got != "Checking" {
		t.Errorf("unchanged name = %q", got)
	}

	if _, err := c.patch(networth.Liabilities, map[string]bool{"category": true}); err == nil {
		t.Error("category on a liability should fail")
	}
	if _, err := c.patch(networth.Incomes, map[string]bool{"term": true}); err == nil {
		t.Error("term on an income should fail")
	}
	if _, err := c.patch(networth.Incomes, map[string]bool{"liquidity": true}); err == nil {
		t.Error("liquidity on an income should fail")
	}
}

func TestQueryItemsKeepsStoredPositions(t *testing.T) {
	assets := []networth.Asset{
		{Name: "Brokerage", Amount: 12000, Category: networth.Investments},
		{Name: "Checking", Amount: 4500, Category: networth.Cash},
		{Name: "Savings", Amount: 9000, Category: networth.Cash},
	}

	rows := queryItems(assets, networth.Filter{
		networth.ByCategory: {Allow: []string{"cash"}},
	}, networth.ByAmount, networth.Desc)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Sorted desc by amount, but positions point into the stored list.
	if rows[0].Name != "Savings" || rows[0].Index != 2 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Name != "Checking" || rows[1].Index != 1 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}
