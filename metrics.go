package networth

// This file is the derived-metrics engine: pure functions of a snapshot's
// Data. It never mutates its input and never fails; every ratio falls back
// to 0 when its denominator is not strictly positive.

// Summary holds the headline totals of a snapshot.
type Summary struct {
	TotalAssets      float64
	TotalLiabilities float64
	NetWorth         float64
	TotalIncome      float64
	TotalExpenses    float64
	Savings          float64
}

func sumAmounts[T Record](items []T) float64 {
	var total float64
	for _, it := range items {
		total += it.Value()
	}
	return total
}

// Summary computes the snapshot totals. Empty lists sum to 0.
func (d Data) Summary() Summary {
	s := Summary{
		TotalAssets:      sumAmounts(d.Assets),
		TotalLiabilities: sumAmounts(d.Liabilities),
		TotalIncome:      sumAmounts(d.Incomes),
		TotalExpenses:    sumAmounts(d.Expenses),
	}
	s.NetWorth = s.TotalAssets - s.TotalLiabilities
	s.Savings = s.TotalIncome - s.TotalExpenses
	return s
}

// Ratios holds the five financial health ratios. Values are raw float64;
// threshold policies (health bands) are a presentation concern and live in
// the renderer.
type Ratios struct {
	// BasicLiquidity is cash assets over total expenses, in months.
	BasicLiquidity float64
	// DebtToAsset is total liabilities over total assets, in percent.
	DebtToAsset float64
	// Solvency is net worth over total assets, in percent.
	Solvency float64
	// SavingsRate is the income fraction not consumed by expenses, in percent.
	SavingsRate float64
	// LiquidToNetWorth is high-liquidity assets over net worth, in percent.
	// It is defined only for a positive net worth.
	LiquidToNetWorth float64
}

// Ratios computes the five ratios of a snapshot.
func (d Data) Ratios() Ratios {
	s := d.Summary()

	var cash, liquid float64
	for _, a := range d.Assets {
		if a.Category == Cash {
			cash += a.Amount
		}
		if a.Liquidity == High {
			liquid += a.Amount
		}
	}

	var r Ratios
	if s.TotalExpenses > 0 {
		r.BasicLiquidity = cash / s.TotalExpenses
	}
	if s.TotalAssets > 0 {
		r.DebtToAsset = s.TotalLiabilities / s.TotalAssets * 100
		r.Solvency = s.NetWorth / s.TotalAssets * 100
	}
	if s.TotalIncome > 0 {
		r.SavingsRate = (s.TotalIncome - s.TotalExpenses) / s.TotalIncome * 100
	}
	if s.NetWorth > 0 {
		r.LiquidToNetWorth = liquid / s.NetWorth * 100
	}
	return r
}

// GroupAmounts sums item amounts grouped by the key function. Items with an
// empty key land in the "other" bucket; that is the deliberate fallback for
// unclassified items, not an error.
func GroupAmounts[T Record](items []T, key func(T) string) map[string]float64 {
	groups := make(map[string]float64)
	for _, it := range items {
		k := key(it)
		if k == "" {
			k = "other"
		}
		groups[k] += it.Value()
	}
	return groups
}

// AssetsByCategory sums asset amounts per category.
func (d Data) AssetsByCategory() map[string]float64 {
	return GroupAmounts(d.Assets, func(a Asset) string { return string(a.Category) })
}

// LiabilitiesByTerm sums liability amounts per term.
func (d Data) LiabilitiesByTerm() map[string]float64 {
	return GroupAmounts(d.Liabilities, func(l Liability) string { return string(l.Term) })
}

// IncomesByCategory sums income amounts per category.
func (d Data) IncomesByCategory() map[string]float64 {
	return GroupAmounts(d.Incomes, func(i Income) string { return string(i.Category) })
}

// ExpensesByCategory sums expense amounts per category.
func (d Data) ExpensesByCategory() map[string]float64 {
	return GroupAmounts(d.Expenses, func(e Expense) string { return string(e.Category) })
}
