package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is the single currency the ledger keeps its books in.
const CurrencyCode = "RWF"

// currencyPrecision is the number of minor-unit digits of CurrencyCode.
const currencyPrecision = 0

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatAmount renders amount in the ledger currency with thousands separators,
// e.g. 1200000 becomes "1,200,000 RWF".
func FormatAmount(amount decimal.Decimal) string {
	raw := FormatWithPrecision(amount, currencyPrecision)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}
	intPart, frac, hasFrac := strings.Cut(raw, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out + " " + CurrencyCode
}
