package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositRecord is one bank deposit made for a supplier. Document is the
// label derived from the channel kind; Group is the shared numbering label
// for all deposits on the same (date, supplier).
type DepositRecord struct {
	ID       uuid.UUID       `json:"id"`
	Date     Date            `json:"date"`
	Supplier Supplier        `json:"supplier"`
	Channel  DepositChannel  `json:"channel"`
	Amount   decimal.Decimal `json:"amount"`
	Document string          `json:"document"`
	Group    string          `json:"group"`
}

// DepositLedger is the ordered collection of deposit records.
type DepositLedger struct {
	records []*DepositRecord
}

// NewDepositLedger creates an empty deposit ledger.
func NewDepositLedger() *DepositLedger {
	return &DepositLedger{}
}

// Append validates the inputs, derives the document label and grouping
// number, and appends the record.
//
// Grouping: a deposit sharing (date, supplier) with a prior deposit reuses
// that deposit's group label; otherwise the next sequential number is
// assigned, counting distinct dates seen so far, zero-padded to two digits.
func (l *DepositLedger) Append(date Date, supplier Supplier, channel DepositChannel, amount decimal.Decimal) (*DepositRecord, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "required"}
	}
	if !supplier.Valid() {
		return nil, &ValidationError{Field: "supplier", Reason: "unknown supplier " + string(supplier)}
	}
	if !channel.Valid() {
		return nil, &ValidationError{Field: "channel", Reason: "unknown deposit channel " + string(channel)}
	}
	if amount.IsNegative() {
		return nil, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	r := &DepositRecord{
		ID:       uuid.New(),
		Date:     date,
		Supplier: supplier,
		Channel:  channel,
		Amount:   amount,
		Document: channel.DocumentLabel(),
		Group:    l.groupFor(date, supplier),
	}

	l.records = append(l.records, r)
	return r, nil
}

func (l *DepositLedger) groupFor(date Date, supplier Supplier) string {
	distinct := map[Date]struct{}{}
	for _, r := range l.records {
		if r.Date == date && r.Supplier == supplier {
			return r.Group
		}
		distinct[r.Date] = struct{}{}
	}
	return fmt.Sprintf("%02d", len(distinct)+1)
}

// Remove deletes the record with the given identity.
func (l *DepositLedger) Remove(id uuid.UUID) error {
	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "deposit", ID: id}
}

// All returns the records in insertion order.
func (l *DepositLedger) All() []*DepositRecord {
	return l.records
}

// Len returns the number of records.
func (l *DepositLedger) Len() int {
	return len(l.records)
}

// TotalFor sums the amounts of all deposits matching the date and supplier
// exactly.
func (l *DepositLedger) TotalFor(date Date, supplier Supplier) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.records {
		if r.Date == date && r.Supplier == supplier {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// MarshalJSON encodes the ledger as its ordered record array.
func (l *DepositLedger) MarshalJSON() ([]byte, error) {
	if l.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.records)
}

// UnmarshalJSON replaces the ledger contents with the decoded record array.
func (l *DepositLedger) UnmarshalJSON(data []byte) error {
	l.records = nil
	return json.Unmarshal(data, &l.records)
}
