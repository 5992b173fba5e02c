package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices are whole pesos; the store never quotes cents.
var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatARS renders an amount the way the storefront displays it everywhere:
// zero decimal places, thousands grouped per the es-AR locale ($12.000).
func FormatARS(amount int) string {
	return arPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
