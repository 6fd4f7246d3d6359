package renderer

import (
	"github.com/etnz/networth"
)

// Ratio health bands. The engine exposes raw values; the three-band
// classification per ratio is a threshold policy that belongs to the
// presentation.

// classify maps a value to one of three band labels: below lo, between lo
// and hi inclusive, above hi.
func classify(v, lo, hi float64, below, mid, above string) string {
	switch {
	case v < lo:
		return below
	case v <= hi:
		return mid
	default:
		return above
	}
}

// LiquidityBand classifies the basic liquidity ratio (months of expenses
// covered by cash).
func LiquidityBand(v float64) string { return classify(v, 3, 6, "low", "adequate", "strong") }

// DebtBand classifies the debt-to-asset ratio; lower is better.
func DebtBand(v float64) string { return classify(v, 30, 50, "healthy", "elevated", "critical") }

// SolvencyBand classifies the solvency ratio.
func SolvencyBand(v float64) string { return classify(v, 50, 70, "weak", "adequate", "strong") }

// SavingsBand classifies the savings ratio.
func SavingsBand(v float64) string { return classify(v, 10, 30, "low", "adequate", "strong") }

// LiquidNetWorthBand classifies the liquid-assets-to-net-worth ratio.
func LiquidNetWorthBand(v float64) string { return classify(v, 15, 50, "low", "adequate", "high") }

// RatioRow is one line of the ratios report.
type RatioRow struct {
	Name  string
	Value string
	Band  string
}

// Ratios is the view model for the ratios report.
type Ratios struct {
	Label string
	Rows  []RatioRow
}

// NewRatios formats the five engine ratios with their health bands.
func NewRatios(label string, r networth.Ratios) *Ratios {
	return &Ratios{
		Label: label,
		Rows: []RatioRow{
			{"Basic liquidity", Months(r.BasicLiquidity), LiquidityBand(r.BasicLiquidity)},
			{"Debt to asset", Percent(r.DebtToAsset), DebtBand(r.DebtToAsset)},
			{"Solvency", Percent(r.Solvency), SolvencyBand(r.Solvency)},
			{"Savings ratio", Percent(r.SavingsRate), SavingsBand(r.SavingsRate)},
			{"Liquid assets / net worth", Percent(r.LiquidToNetWorth), LiquidNetWorthBand(r.LiquidToNetWorth)},
		},
	}
}

// RatiosMarkdown renders the ratios report to a markdown string.
func RatiosMarkdown(r *Ratios) string {
	return renderTemplate("ratios", "ratios.md", nil, r)
}
