package calculator

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the amount spent in one expense category.
type CategoryTotal struct {
	Category string
	Total    int64
	Count    int
}

// Summary aggregates a trip's spending for overview screens.
type Summary struct {
	TotalSpent       int64
	PerPersonAverage int64
	SettledTotal     int64
	OutstandingTotal int64
	ExpenseCount     int
	Categories       []CategoryTotal
}

// CategorizedExpense pairs an engine expense with its display category.
type CategorizedExpense struct {
	Expense
	Category string
}

const uncategorized = "other"

// Summarize totals spending overall and per category. The per-person average
// divides the total by the roster size, rounded half up.
func Summarize(expenses []CategorizedExpense, rosterSize int) Summary {
	var s Summary
	byCategory := make(map[string]*CategoryTotal)

	for _, e := range expenses {
		s.TotalSpent += e.Amount
		s.ExpenseCount++
		if e.Settled {
			s.SettledTotal += e.Amount
		} else {
			s.OutstandingTotal += e.Amount
		}

		name := strings.TrimSpace(e.Category)
		if name == "" {
			name = uncategorized
		}
		c, ok := byCategory[name]
		if !ok {
			c = &CategoryTotal{Category: name}
			byCategory[name] = c
		}
		c.Total += e.Amount
		c.Count++
	}

	if rosterSize > 0 {
		s.PerPersonAverage = Share(s.TotalSpent, rosterSize)
	}

	s.Categories = make([]CategoryTotal, 0, len(byCategory))
	for _, c := range byCategory {
		s.Categories = append(s.Categories, *c)
	}
	slices.SortFunc(s.Categories, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return s
}

// minorUnits lists currencies whose minor-unit exponent is not 2.
var minorUnits = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"ISK": 0,
	"CLP": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"JOD": 3,
	"TND": 3,
}

// CurrencyExponent returns the number of decimal places of a currency's minor unit.
func CurrencyExponent(currency string) int32 {
	if exp, ok := minorUnits[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// FormatAmount renders a minor-unit amount in major units, e.g. 12050 USD -> "120.50".
func FormatAmount(minor int64, currency string) string {
	exp := CurrencyExponent(currency)
	return decimal.New(minor, -exp).StringFixed(exp)
}

// ParseAmount converts a major-unit string such as "120.5" into minor units,
// rounding half up to the currency's precision.
func ParseAmount(major string, currency string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(major))
	if err != nil {
		return 0, err
	}
	exp := CurrencyExponent(currency)
	minor := d.Shift(exp).Round(0)
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s %s", ErrAmountOutOfRange, major, currency)
	}
	return minor.IntPart(), nil
}
