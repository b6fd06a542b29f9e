package core

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount in major units with its currency symbol.
// Codes the locale formatter cannot resolve fall back to the fixed symbol
// table for the closed currency enum (defaulting to "$"), so formatting
// never fails.
func FormatAmount(amount float64, code string) string {
	if unit, err := currency.ParseISO(code); err == nil {
		return displayPrinter.Sprint(currency.Symbol(unit.Amount(amount)))
	}
	cur := USD
	if c := Currency(code); c.Valid() {
		cur = c
	}
	return fmt.Sprintf("%s%.2f", cur.Symbol(), amount)
}

// FormatCents is FormatAmount over an amount expressed in cents.
func FormatCents(cents float64, code string) string {
	return FormatAmount(cents/100.0, code)
}
