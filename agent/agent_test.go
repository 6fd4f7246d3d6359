package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/networth"
)

func testData() networth.Data {
	return networth.Data{
		Assets: []networth.Asset{
			{Name: "Checking", Amount: 4500, Category: networth.Cash, Liquidity: networth.High},
			{Name: "Brokerage", Amount: 12000, Category: networth.Investments, Liquidity: networth.Medium},
		},
		Liabilities: []networth.Liability{
			{Name: "Car loan", Amount: 8000, Term: networth.MediumTerm},
		},
		Incomes: []networth.Income{
			{Name: "Salary", Amount: 3000, Category: networth.Employment},
		},
		Expenses: []networth.Expense{
			{Name: "Rent", Amount: 1500, Category: networth.Essential},
		},
	}
}

func TestContext(t *testing.T) {
	text := Context("March", testData())

	for _, want := range []string{
		"Snapshot: March",
		"net worth: 8500.00",
		"basic liquidity: 3.0 months",
		"- Checking: 4500.00 (cash)",
		"- Car loan: 8000.00 (medium-term)",
		"- Salary: 3000.00 (employment)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("context misses %q:\n%s", want, text)
		}
	}
}

func TestContextEmptySections(t *testing.T) {
	text := Context("Empty", networth.Data{})
	if got := strings.Count(text, "(none)"); got != 4 {
		t.Errorf("empty snapshot should mark all four sections empty, marked %d:\n%s", got, text)
	}
}

func TestContextUnclassified(t *testing.T) {
	data := networth.Data{Assets: []networth.Asset{{Name: "Misc", Amount: 10}}}
	if text := Context("X", data); !strings.Contains(text, "(unclassified)") {
		t.Errorf("missing category should read unclassified:\n%s", text)
	}
}

func TestAnalysis(t *testing.T) {
	text := Analysis(testData())

	for _, want := range []string{
		"Net worth is positive at 8500.00",
		"3.0 months",
		"Debt is 48.5% of assets",
		"savings rate is 50.0%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("analysis misses %q:\n%s", want, text)
		}
	}
}

func TestAnalysisEmpty(t *testing.T) {
	text := Analysis(networth.Data{})
	if !strings.Contains(text, "Net worth is zero") {
		t.Errorf("empty snapshot analysis: %q", text)
	}
	// no income, expenses or assets: no ratio lines
	if strings.Contains(text, "%") {
		t.Errorf("empty snapshot should produce no ratio lines: %q", text)
	}
}

func TestAnalysisOverspending(t *testing.T) {
	data := networth.Data{
		Incomes:  []networth.Income{{Name: "Salary", Amount: 1000}},
		Expenses: []networth.Expense{{Name: "Rent", Amount: 1500}},
	}
	if text := Analysis(data); !strings.Contains(text, "Spending exceeds income") {
		t.Errorf("overspending not flagged: %q", text)
	}
}

func TestAdviseWithoutClient(t *testing.T) {
	a := NewAdvisor()
	got := a.Advise(context.Background(), nil, "March", testData(), "how am I doing?")

	if !strings.Contains(got, "Snapshot: March") || !strings.Contains(got, "Analysis:") {
		t.Errorf("nil client should fall back to context plus analysis:\n%s", got)
	}
}

func TestPrompt(t *testing.T) {
	a := NewAdvisor()
	p := a.Prompt("March", testData(), "  how am I doing?  ")
	if !strings.HasSuffix(p, "Question: how am I doing?\n") {
		t.Errorf("prompt should end with the trimmed question:\n%s", p)
	}
	if !strings.Contains(p, "Snapshot: March") {
		t.Errorf("prompt should embed the snapshot context:\n%s", p)
	}
}
