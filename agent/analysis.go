package agent

import (
	"fmt"
	"strings"

	"github.com/etnz/networth"
)

// Analysis produces a short deterministic reading of a snapshot, built only
// from the engine's totals and ratios. It is what the assist command falls
// back to when the model is unreachable, so it must never fail.
func Analysis(data networth.Data) string {
	s := data.Summary()
	r := data.Ratios()

	var lines []string

	switch {
	case s.NetWorth > 0:
		lines = append(lines, fmt.Sprintf("Net worth is positive at %.2f.", s.NetWorth))
	case s.NetWorth < 0:
		lines = append(lines, fmt.Sprintf("Net worth is negative at %.2f; liabilities exceed assets.", s.NetWorth))
	default:
		lines = append(lines, "Net worth is zero.")
	}

	if s.TotalExpenses > 0 {
		switch {
		case r.BasicLiquidity < 3:
			lines = append(lines, fmt.Sprintf("Cash covers %.1f months of expenses; an emergency fund usually targets 3 to 6 months.", r.BasicLiquidity))
		case r.BasicLiquidity > 6:
			lines = append(lines, fmt.Sprintf("Cash covers %.1f months of expenses, beyond a typical emergency fund.", r.BasicLiquidity))
		default:
			lines = append(lines, fmt.Sprintf("Cash covers %.1f months of expenses, within the usual 3 to 6 month range.", r.BasicLiquidity))
		}
	}

	if s.TotalAssets > 0 {
		switch {
		case r.DebtToAsset > 50:
			lines = append(lines, fmt.Sprintf("Debt is %.1f%% of assets, a high load.", r.DebtToAsset))
		case r.DebtToAsset > 30:
			lines = append(lines, fmt.Sprintf("Debt is %.1f%% of assets, on the elevated side.", r.DebtToAsset))
		default:
			lines = append(lines, fmt.Sprintf("Debt is %.1f%% of assets, a manageable load.", r.DebtToAsset))
		}
	}

	if s.TotalIncome > 0 {
		switch {
		case r.SavingsRate < 0:
			lines = append(lines, fmt.Sprintf("Spending exceeds income; the savings rate is %.1f%%.", r.SavingsRate))
		case r.SavingsRate < 10:
			lines = append(lines, fmt.Sprintf("The savings rate is %.1f%%, below the usual 10%% floor.", r.SavingsRate))
		default:
			lines = append(lines, fmt.Sprintf("The savings rate is %.1f%%.", r.SavingsRate))
		}
	}

	return strings.Join(lines, "\n")
}
