// Package format renders monetary amounts and production quantities for display.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns the amount with the given symbol and thousands separators,
// rounded to whole units (e.g., "Rp 23,850,000" or "-Rp 1,500").
func Currency(symbol string, amount float64) string {
	rounded := math.Round(amount)
	formatted := NumericCurrency(math.Abs(rounded))
	if symbol = strings.TrimSpace(symbol); symbol != "" {
		formatted = symbol + " " + formatted
	}
	if rounded < 0 {
		return "-" + formatted
	}
	return formatted
}

// NumericCurrency returns the amount rounded to whole units with separators but
// without a currency symbol (e.g., "-1,234").
func NumericCurrency(amount float64) string {
	rounded := math.Round(amount)
	if rounded == 0 {
		rounded = 0
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.0f", rounded)
}

// Quantity renders a production quantity. Whole numbers print without decimals;
// fractional vertex coordinates keep two.
func Quantity(value float64) string {
	if math.IsInf(value, 1) {
		return "∞"
	}
	p := message.NewPrinter(language.English)
	if value == math.Trunc(value) {
		return p.Sprintf("%.0f", value)
	}
	return p.Sprintf("%.2f", value)
}
