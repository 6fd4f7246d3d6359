package networth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies one of the four item lists of a snapshot.
type Kind string

const (
	Assets      Kind = "assets"
	Liabilities Kind = "liabilities"
	Incomes     Kind = "incomes"
	Expenses    Kind = "expenses"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Assets, Liabilities, Incomes, Expenses:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown item kind: %q", s)
	}
}

// Kinds returns the four kinds in their canonical order.
func Kinds() []Kind { return []Kind{Assets, Liabilities, Incomes, Expenses} }

// AssetCategory classifies an asset. Empty means unclassified.
type AssetCategory string

const (
	Cash        AssetCategory = "cash"
	Investments AssetCategory = "investments"
	Retirement  AssetCategory = "retirement"
	Property    AssetCategory = "property"
	Vehicles    AssetCategory = "vehicles"
	Insurance   AssetCategory = "insurance"
	OtherAsset  AssetCategory = "other"
)

// ParseAssetCategory parses a string into an AssetCategory. Empty is valid
// and means unclassified.
func ParseAssetCategory(s string) (AssetCategory, error) {
	switch AssetCategory(s) {
	case "", Cash, Investments, Retirement, Property, Vehicles, Insurance, OtherAsset:
		return AssetCategory(s), nil
	default:
		return "", fmt.Errorf("unknown asset category: %q", s)
	}
}

// Liquidity describes how quickly an asset converts to cash.
type Liquidity string

const (
	High   Liquidity = "high"
	Medium Liquidity = "medium"
	Low    Liquidity = "low"
)

// ParseLiquidity parses a string into a Liquidity. Empty is valid.
func ParseLiquidity(s string) (Liquidity, error) {
	switch Liquidity(s) {
	case "", High, Medium, Low:
		return Liquidity(s), nil
	default:
		return "", fmt.Errorf("unknown liquidity: %q", s)
	}
}

// Term classifies a liability by repayment horizon.
type Term string

const (
	ShortTerm  Term = "short-term"
	MediumTerm Term = "medium-term"
	LongTerm   Term = "long-term"
)

// ParseTerm parses a string into a Term. Empty is valid.
func ParseTerm(s string) (Term, error) {
	switch Term(s) {
	case "", ShortTerm, MediumTerm, LongTerm:
		return Term(s), nil
	default:
		return "", fmt.Errorf("unknown term: %q", s)
	}
}

// IncomeCategory classifies an income source.
type IncomeCategory string

const (
	Employment  IncomeCategory = "employment"
	Business    IncomeCategory = "business"
	Passive     IncomeCategory = "passive"
	OtherIncome IncomeCategory = "other"
)

// ParseIncomeCategory parses a string into an IncomeCategory. Empty is valid.
func ParseIncomeCategory(s string) (IncomeCategory, error) {
	switch IncomeCategory(s) {
	case "", Employment, Business, Passive, OtherIncome:
		return IncomeCategory(s), nil
	default:
		return "", fmt.Errorf("unknown income category: %q", s)
	}
}

// ExpenseCategory classifies an expense.
type ExpenseCategory string

const (
	Essential     ExpenseCategory = "essential"
	Variable      ExpenseCategory = "variable"
	Discretionary ExpenseCategory = "discretionary"
	OtherExpense  ExpenseCategory = "other"
)

// ParseExpenseCategory parses a string into an ExpenseCategory. Empty is valid.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case "", Essential, Variable, Discretionary, OtherExpense:
		return ExpenseCategory(s), nil
	default:
		return "", fmt.Errorf("unknown expense category: %q", s)
	}
}

// Asset is something owned: cash, investments, property.
type Asset struct {
	Name      string
	Amount    float64
	Category  AssetCategory
	Liquidity Liquidity
}

// Liability is something owed.
type Liability struct {
	Name   string
	Amount float64
	Term   Term
}

// Income is a recurring source of money.
type Income struct {
	Name     string
	Amount   float64
	Category IncomeCategory
}

// Expense is a recurring outflow of money.
type Expense struct {
	Name     string
	Amount   float64
	Category ExpenseCategory
}

// Item is a record of any of the four kinds.
type Item interface {
	Record
	Kind() Kind
	// normalize trims the name and coerces the amount; it reports a
	// ValidationError when the trimmed name is empty.
	normalize() (Item, error)
}

func (Asset) Kind() Kind     { return Assets }
func (Liability) Kind() Kind { return Liabilities }
func (Income) Kind() Kind    { return Incomes }
func (Expense) Kind() Kind   { return Expenses }

// coerceAmount turns any float into a usable amount: anything that is not a
// finite non-negative number becomes 0.
func coerceAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Reason: "item name cannot be empty"}
	}
	return name, nil
}

func (a Asset) normalize() (Item, error) {
	name, err := normalizeName(a.Name)
	if err != nil {
		return nil, err
	}
	a.Name, a.Amount = name, coerceAmount(a.Amount)
	return a, nil
}

func (l Liability) normalize() (Item, error) {
	name, err := normalizeName(l.Name)
	if err != nil {
		return nil, err
	}
	l.Name, l.Amount = name, coerceAmount(l.Amount)
	return l, nil
}

func (i Income) normalize() (Item, error) {
	name, err := normalizeName(i.Name)
	if err != nil {
		return nil, err
	}
	i.Name, i.Amount = name, coerceAmount(i.Amount)
	return i, nil
}

func (e Expense) normalize() (Item, error) {
	name, err := normalizeName(e.Name)
	if err != nil {
		return nil, err
	}
	e.Name, e.Amount = name, coerceAmount(e.Amount)
	return e, nil
}

// Label returns the item display name.
func (a Asset) Label() string     { return a.Name }
func (l Liability) Label() string { return l.Name }
func (i Income) Label() string    { return i.Name }
func (e Expense) Label() string   { return e.Name }

// Value returns the item amount.
func (a Asset) Value() float64     { return a.Amount }
func (l Liability) Value() float64 { return l.Amount }
func (i Income) Value() float64    { return i.Amount }
func (e Expense) Value() float64   { return e.Amount }

func formatValue(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Display returns the display string for a column, or "" when the item has
// no such column or the value is missing.
func (a Asset) Display(c Column) string {
	switch c {
	case ByName:
		return a.Name
	case ByAmount:
		return formatValue(a.Amount)
	case ByCategory:
		return string(a.Category)
	case ByLiquidity:
		return string(a.Liquidity)
	}
	return ""
}

func (l Liability) Display(c Column) string {
	switch c {
	case ByName:
		return l.Name
	case ByAmount:
		return formatValue(l.Amount)
	case ByTerm:
		return string(l.Term)
	}
	return ""
}

func (i Income) Display(c Column) string {
	switch c {
	case ByName:
		return i.Name
	case ByAmount:
		return formatValue(i.Amount)
	case ByCategory:
		return string(i.Category)
	}
	return ""
}

func (e Expense) Display(c Column) string {
	switch c {
	case ByName:
		return e.Name
	case ByAmount:
		return formatValue(e.Amount)
	case ByCategory:
		return string(e.Category)
	}
	return ""
}

// Tag returns the item's main categorical value: the category for assets,
// incomes and expenses, the term for liabilities.
func Tag(it Item) string {
	switch v := it.(type) {
	case Asset:
		return string(v.Category)
	case Liability:
		return string(v.Term)
	case Income:
		return string(v.Category)
	case Expense:
		return string(v.Category)
	default:
		return ""
	}
}
