package ledger

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the single product this operation trades in.
const Product = "Pollo"

// DeliveryRecord is one supplier delivery. The input fields are set at
// append time and never change; RemainingKg, RemainingLb, Average and Total
// derive from the inputs, while DepositTotal, DailyBalance and Cumulative
// are reconciliation outputs recomputed from full ledger state.
type DeliveryRecord struct {
	ID       uuid.UUID    `json:"id"`
	Sequence int          `json:"sequence"`
	Date     Date         `json:"date"`
	Supplier Supplier     `json:"supplier"`
	Product  string       `json:"product"`
	Quantity int          `json:"quantity"`
	Outbound decimal.Decimal `json:"outbound_kg"`
	Inbound  decimal.Decimal `json:"inbound_kg"`
	Document DocumentType `json:"document"`
	Crates   int          `json:"crates"`
	Price    decimal.Decimal `json:"unit_price"`

	RemainingKg decimal.Decimal `json:"remaining_kg"`
	RemainingLb decimal.Decimal `json:"remaining_lb"`
	Average     decimal.Decimal `json:"average"`
	Total       decimal.Decimal `json:"total"`

	DepositTotal decimal.Decimal `json:"deposit_total"`
	DailyBalance decimal.Decimal `json:"daily_balance"`
	Cumulative   decimal.Decimal `json:"cumulative_balance"`
}

// DeliveryLedger is the ordered collection of delivery records. Records keep
// their insertion order, which is also the order the running balance folds
// over.
type DeliveryLedger struct {
	records []*DeliveryRecord
}

// NewDeliveryLedger creates an empty delivery ledger.
func NewDeliveryLedger() *DeliveryLedger {
	return &DeliveryLedger{}
}

// Append validates the inputs, computes the derived weight and amount
// fields and the per-date sequence number, and appends the record. The
// reconciliation outputs are left zero until the next Reconcile run.
func (l *DeliveryLedger) Append(date Date, supplier Supplier, quantity int, outboundKg, inboundKg decimal.Decimal, document DocumentType, crates int, unitPrice decimal.Decimal) (*DeliveryRecord, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "required"}
	}
	if !supplier.Valid() {
		return nil, &ValidationError{Field: "supplier", Reason: "unknown supplier " + string(supplier)}
	}
	if !document.Valid() {
		return nil, &ValidationError{Field: "document", Reason: "unknown document type " + string(document)}
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if crates < 0 {
		return nil, &ValidationError{Field: "crates", Reason: "must not be negative"}
	}
	if outboundKg.IsNegative() {
		return nil, &ValidationError{Field: "outbound weight", Reason: "must not be negative"}
	}
	if inboundKg.IsNegative() {
		return nil, &ValidationError{Field: "inbound weight", Reason: "must not be negative"}
	}
	if unitPrice.IsNegative() {
		return nil, &ValidationError{Field: "unit price", Reason: "must not be negative"}
	}

	remainingKg := outboundKg.Sub(inboundKg)
	remainingLb := KilogramsToPounds(remainingKg)

	// Zero quantity yields a zero average, not a division error.
	average := decimal.Zero
	if quantity != 0 {
		average = remainingLb.Div(decimal.NewFromInt(int64(quantity)))
	}

	r := &DeliveryRecord{
		ID:          uuid.New(),
		Sequence:    l.sequenceFor(date),
		Date:        date,
		Supplier:    supplier,
		Product:     Product,
		Quantity:    quantity,
		Outbound:    outboundKg,
		Inbound:     inboundKg,
		Document:    document,
		Crates:      crates,
		Price:       unitPrice,
		RemainingKg: remainingKg,
		RemainingLb: remainingLb,
		Average:     average,
		Total:       remainingLb.Mul(unitPrice),
	}

	l.records = append(l.records, r)
	return r, nil
}

// sequenceFor reuses the sequence number of an already-seen date, or
// assigns the next one (distinct dates seen so far, plus one).
func (l *DeliveryLedger) sequenceFor(date Date) int {
	distinct := map[Date]struct{}{}
	for _, r := range l.records {
		if r.Date == date {
			return r.Sequence
		}
		distinct[r.Date] = struct{}{}
	}
	return len(distinct) + 1
}

// Remove deletes the record with the given identity. Remaining records keep
// their sequence numbers. Returns a NotFoundError when the identity is not
// present.
func (l *DeliveryLedger) Remove(id uuid.UUID) error {
	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "delivery", ID: id}
}

// Get returns the record with the given identity, if present.
func (l *DeliveryLedger) Get(id uuid.UUID) (*DeliveryRecord, bool) {
	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// All returns the records in insertion order. The returned slice is the
// ledger's own backing store; callers must not reorder it.
func (l *DeliveryLedger) All() []*DeliveryRecord {
	return l.records
}

// Len returns the number of records.
func (l *DeliveryLedger) Len() int {
	return len(l.records)
}

// PoundsOn sums the remaining pounds of every delivery dated exactly on the
// given date.
func (l *DeliveryLedger) PoundsOn(date Date) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.records {
		if r.Date == date {
			sum = sum.Add(r.RemainingLb)
		}
	}
	return sum
}

// MarshalJSON encodes the ledger as its ordered record array.
func (l *DeliveryLedger) MarshalJSON() ([]byte, error) {
	if l.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.records)
}

// UnmarshalJSON replaces the ledger contents with the decoded record array.
func (l *DeliveryLedger) UnmarshalJSON(data []byte) error {
	l.records = nil
	return json.Unmarshal(data, &l.records)
}
