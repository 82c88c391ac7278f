package ledger

import "github.com/shopspring/decimal"

// poundsPerKilogram is the exact conversion factor used across the ledger.
var poundsPerKilogram = decimal.RequireFromString("2.20462")

// KilogramsToPounds converts a weight in kilograms to pounds.
func KilogramsToPounds(kg decimal.Decimal) decimal.Decimal {
	return kg.Mul(poundsPerKilogram)
}
