package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with '.' thousands separators and a ',' decimal mark.
// Example: 15000.5 -> "15.000,50"
func FormatCurrency(amount decimal.Decimal) string {
	formatted := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	parts := strings.SplitN(formatted, ".", 2)
	integerPart := parts[0]
	decimalPart := parts[1]

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return sign + strings.Join(result, ".") + "," + decimalPart
}

// FormatCurrencyLabel prefixes FormatCurrency with the display symbol.
func FormatCurrencyLabel(symbol string, amount decimal.Decimal) string {
	return symbol + " " + FormatCurrency(amount)
}
