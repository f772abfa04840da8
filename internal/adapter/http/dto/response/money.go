package response

import "github.com/shopspring/decimal"

// FormatAmount renders minor units as a two-decimal string ("4000" -> "40.00").
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
