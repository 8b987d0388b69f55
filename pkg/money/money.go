// Package money concentra las conversiones de montos: decimal ↔ centavos enteros
// y el texto en reales (pt-BR) que muestra el dashboard.
package money

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents convierte un monto a centavos redondeando half-up en el segundo decimal.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// FromCents convierte centavos a un monto decimal con exponente -2.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatBRL devuelve el monto como texto en reales, ej: "R$ 1.234,50".
// Solo para visualización; nunca se debe volver a parsear.
func FormatBRL(d decimal.Decimal) string {
	fixed := d.Round(2)
	sign := ""
	if fixed.IsNegative() {
		sign = "-"
		fixed = fixed.Neg()
	}
	// parte entera agrupada por el printer pt-BR; centavos tomados del texto exacto
	_, cents, _ := strings.Cut(fixed.StringFixed(2), ".")
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$ " + p.Sprintf("%d", fixed.IntPart()) + "," + cents
}
