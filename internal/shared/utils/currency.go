package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a price in centavos as a pt-BR currency string,
// e.g. 150000 -> "R$ 1.500,00". Prices are stored as integer cents; only
// the presentation layer deals in decimal reais.
func FormatBRL(cents uint64) string {
	return brlPrinter.Sprintf("R$ %v", number.Decimal(
		float64(cents)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
