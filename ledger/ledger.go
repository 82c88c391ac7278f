// Package ledger implements the record ledgers and balance reconciliation
// for a poultry-supply operation. It tracks supplier deliveries, bank
// deposits and debit-note discounts, and derives the running balance
// between what suppliers delivered and what was deposited.
//
// The three ledgers hold records in insertion order. Derived fields on a
// delivery (remaining weight, average, total) are computed at append time;
// the reconciliation outputs (matched deposit, daily balance, cumulative
// balance) are recomputed from full ledger state by Reconcile after every
// mutation. All monetary and weight arithmetic uses decimal values.
//
// Example usage:
//
//	l := ledger.NewLedgers(decimal.RequireFromString("-35.00"))
//	date := ledger.NewDate(2024, time.January, 2)
//	l.Deliveries.Append(date, ledger.SupplierLiris, 40,
//	    decimal.NewFromInt(100), decimal.NewFromInt(10),
//	    ledger.DocumentInvoice, 12, decimal.RequireFromString("0.65"))
//	l.Deposits.Append(date, ledger.SupplierLiris,
//	    ledger.ChannelATMPichincha, decimal.NewFromInt(50))
//	ledger.Reconcile(l)
package ledger

import "github.com/shopspring/decimal"

// Ledgers aggregates the three ledgers and the opening balance that seeds
// the cumulative fold. It is passed explicitly into the reconciliation
// engine and the report projections; there is no ambient ledger state.
type Ledgers struct {
	OpeningBalance decimal.Decimal
	Deliveries     *DeliveryLedger
	Deposits       *DepositLedger
	Notes          *DebitNoteLedger
}

// NewLedgers creates an empty aggregate seeded with the given opening
// balance.
func NewLedgers(openingBalance decimal.Decimal) *Ledgers {
	return &Ledgers{
		OpeningBalance: openingBalance,
		Deliveries:     NewDeliveryLedger(),
		Deposits:       NewDepositLedger(),
		Notes:          NewDebitNoteLedger(),
	}
}
