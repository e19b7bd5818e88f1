package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders an amount in whole currency units with a space as the
// thousands separator, e.g. "1 234 $". Halves round to even.
func Money(amount float64) string {
	return groupThousands(decimal.NewFromFloat(amount).StringFixedBank(0)) + " $"
}

// SignedMoney prefixes Money with sign, as in "-1 234 $".
func SignedMoney(sign string, amount float64) string {
	return sign + Money(amount)
}

func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	if negative && strings.Trim(digits, "0") != "" {
		return "-" + b.String()
	}
	return b.String()
}
