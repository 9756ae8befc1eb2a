// Package money formatea valores monetarios en reales (pt-BR).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL devuelve el valor con prefijo "R$", separador de miles "." y dos
// decimales con ",": 1234.5 → "R$ 1.234,50". El redondeo y los dígitos salen
// del decimal, sin pasar por float64.
func FormatBRL(v decimal.Decimal) string {
	digits := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(digits, ".")

	out := "R$ " + groupThousands(intPart) + "," + frac
	if v.Round(2).IsNegative() {
		return "-" + out
	}
	return out
}

// groupThousands inserta "." cada tres dígitos contando desde la derecha.
func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
