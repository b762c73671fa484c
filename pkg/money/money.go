// Package money formats euro amounts for the nl-NL locale.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Dutch)

// FormatEUR renders an amount as a Dutch euro string, e.g. "€ 1.234,56".
func FormatEUR(amount decimal.Decimal) string {
	return printer.Sprintf("€ %.2f", amount.InexactFloat64())
}
