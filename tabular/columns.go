// Package tabular imports and exports the delivery ledger as spreadsheet
// files. Both CSV and XLSX are supported, chosen by file extension. Export
// writes every column including the derived and reconciled fields, with
// currency columns formatted to two decimals for display; import reads only
// the input columns and leaves derived values to the reconciliation engine.
package tabular

import "strings"

// Delivery column headers, in export order.
const (
	colSequence   = "No"
	colDate       = "Date"
	colSupplier   = "Supplier"
	colProduct    = "Product"
	colQuantity   = "Quantity"
	colOutbound   = "Outbound Kg"
	colInbound    = "Inbound Kg"
	colDocument   = "Document"
	colCrates     = "Crates"
	colPrice      = "Unit Price"
	colAverage    = "Average"
	colKg         = "Remaining Kg"
	colLb         = "Remaining Lb"
	colTotal      = "Total"
	colDeposit    = "Deposit Amount"
	colDaily      = "Daily Balance"
	colCumulative = "Cumulative Balance"
)

// deliveryColumns is the full export header row.
var deliveryColumns = []string{
	colSequence, colDate, colSupplier, colProduct, colQuantity,
	colOutbound, colInbound, colDocument, colCrates, colPrice,
	colAverage, colKg, colLb, colTotal, colDeposit, colDaily, colCumulative,
}

// importColumns are the input fields a file must provide; every other
// column is derived and ignored on import.
var importColumns = []string{
	colDate, colSupplier, colQuantity, colOutbound, colInbound,
	colDocument, colCrates, colPrice,
}

// normalizeHeader canonicalizes a header cell for case-insensitive matching.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
