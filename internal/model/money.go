package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount the way the dashboard displays pesos:
// "$ 1.234,56" with a dot as thousands separator and a comma before the
// two decimal places.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
