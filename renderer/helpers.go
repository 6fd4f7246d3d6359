package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// CurrencyCode selects the currency used to format amounts. Amounts carry
// no currency of their own; this is a pure display choice.
var CurrencyCode = "USD"

// Amount formats a raw amount in the display currency.
func Amount(v float64) string {
	cur := money.GetCurrency(CurrencyCode)
	if cur == nil {
		cur = money.GetCurrency("USD")
	}
	minor := int64(math.Round(v * math.Pow10(cur.Fraction)))
	return money.New(minor, cur.Code).Display()
}

// SignedAmount formats an amount with an explicit sign, "-" for zero.
func SignedAmount(v float64) string {
	if v == 0 {
		return "-"
	}
	if v > 0 {
		return "+" + Amount(v)
	}
	return Amount(v)
}

// Percent formats a ratio value expressed in percent.
func Percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// Months formats the liquidity cover expressed in months.
func Months(v float64) string { return fmt.Sprintf("%.1f months", v) }

// Share formats a part of a whole as a percentage; a zero total renders
// as "-".
func Share(part, total float64) string {
	if total <= 0 {
		return "-"
	}
	return Percent(part / total * 100)
}
