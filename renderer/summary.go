package renderer

import (
	"github.com/etnz/networth"
)

// Summary is the view model for the summary report.
type Summary struct {
	Label            string
	TotalAssets      string
	TotalLiabilities string
	NetWorth         string
	TotalIncome      string
	TotalExpenses    string
	Savings          string
}

// NewSummary formats the engine totals of a snapshot for display.
func NewSummary(label string, s networth.Summary) *Summary {
	return &Summary{
		Label:            label,
		TotalAssets:      Amount(s.TotalAssets),
		TotalLiabilities: Amount(s.TotalLiabilities),
		NetWorth:         SignedAmount(s.NetWorth),
		TotalIncome:      Amount(s.TotalIncome),
		TotalExpenses:    Amount(s.TotalExpenses),
		Savings:          SignedAmount(s.Savings),
	}
}

// SummaryMarkdown renders the summary report to a markdown string.
func SummaryMarkdown(s *Summary) string {
	return renderTemplate("summary", "summary.md", nil, s)
}
