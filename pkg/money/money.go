// Package money formats monetary amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display selects how the currency is labeled in the formatted string.
type Display string

const (
	// DisplayCode renders the ISO code, e.g. "CLP 12.345".
	DisplayCode Display = "code"
	// DisplaySymbol renders the symbol, e.g. "$12.345".
	DisplaySymbol Display = "symbol"
)

// Chilean pesos carry no fraction digits, so amounts are whole int64 values.
var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP formats an amount of Chilean pesos with es-CL digit grouping.
func FormatCLP(amount int64, display Display) string {
	grouped := printer.Sprint(number.Decimal(amount))
	if display == DisplaySymbol {
		return "$" + grouped
	}
	return "CLP " + grouped
}
