package ledger

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebitNoteRecord is a discount adjustment negotiated for a date. Pounds is
// the delivered weight the discount applies to, captured from the delivery
// ledger when the note is appended. RealDiscount is the amount actually
// granted; it is optional, and only notes with a real discount affect the
// cumulative balances.
type DebitNoteRecord struct {
	ID               uuid.UUID        `json:"id"`
	Date             Date             `json:"date"`
	Rate             decimal.Decimal  `json:"rate"`
	Pounds           decimal.Decimal  `json:"pounds"`
	PossibleDiscount decimal.Decimal  `json:"possible_discount"`
	RealDiscount     *decimal.Decimal `json:"real_discount,omitempty"`
}

// DebitNoteLedger is the ordered collection of debit note records.
type DebitNoteLedger struct {
	records []*DebitNoteRecord
}

// NewDebitNoteLedger creates an empty debit note ledger.
func NewDebitNoteLedger() *DebitNoteLedger {
	return &DebitNoteLedger{}
}

// Append validates the inputs, computes the pound quantity from the
// deliveries dated exactly on the note date, and appends the record.
// realDiscount may be nil when the granted amount is not yet known.
func (l *DebitNoteLedger) Append(deliveries *DeliveryLedger, date Date, rate decimal.Decimal, realDiscount *decimal.Decimal) (*DebitNoteRecord, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "required"}
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, &ValidationError{Field: "rate", Reason: "must be between 0 and 1"}
	}
	if realDiscount != nil && realDiscount.IsNegative() {
		return nil, &ValidationError{Field: "real discount", Reason: "must not be negative"}
	}

	pounds := deliveries.PoundsOn(date)

	r := &DebitNoteRecord{
		ID:               uuid.New(),
		Date:             date,
		Rate:             rate,
		Pounds:           pounds,
		PossibleDiscount: pounds.Mul(rate),
		RealDiscount:     realDiscount,
	}

	l.records = append(l.records, r)
	return r, nil
}

// Remove deletes the record with the given identity.
func (l *DebitNoteLedger) Remove(id uuid.UUID) error {
	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "debit note", ID: id}
}

// All returns the records in insertion order.
func (l *DebitNoteLedger) All() []*DebitNoteRecord {
	return l.records
}

// Len returns the number of records.
func (l *DebitNoteLedger) Len() int {
	return len(l.records)
}

// MarshalJSON encodes the ledger as its ordered record array.
func (l *DebitNoteLedger) MarshalJSON() ([]byte, error) {
	if l.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.records)
}

// UnmarshalJSON replaces the ledger contents with the decoded record array.
func (l *DebitNoteLedger) UnmarshalJSON(data []byte) error {
	l.records = nil
	return json.Unmarshal(data, &l.records)
}
