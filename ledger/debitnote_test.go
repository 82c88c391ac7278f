package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestDebitNoteLedger_AppendComputesPounds(t *testing.T) {
	l := testLedgers()

	mustDelivery(t, l, day(2024, time.March, 4), SupplierLiris, 40, "100", "10", "0.65")
	mustDelivery(t, l, day(2024, time.March, 4), SupplierMedina, 20, "50", "5", "0.70")
	mustDelivery(t, l, day(2024, time.March, 5), SupplierLiris, 10, "30", "3", "0.65")

	note, err := l.Notes.Append(l.Deliveries, day(2024, time.March, 4), dec("0.02"), nil)
	assert.NoError(t, err)

	// 90kg + 45kg delivered on the 4th.
	assertDecimal(t, "297.6237", note.Pounds)
	assertDecimal(t, "5.952474", note.PossibleDiscount)
	assert.True(t, note.RealDiscount == nil)
}

func TestDebitNoteLedger_AppendNoDeliveries(t *testing.T) {
	l := testLedgers()

	note, err := l.Notes.Append(l.Deliveries, day(2024, time.March, 4), dec("0.05"), nil)
	assert.NoError(t, err)
	assert.True(t, note.Pounds.IsZero())
	assert.True(t, note.PossibleDiscount.IsZero())
}

func TestDebitNoteLedger_AppendValidation(t *testing.T) {
	tests := []struct {
		name string
		rate string
		real string // empty means absent
	}{
		{name: "rate below zero", rate: "-0.1"},
		{name: "rate above one", rate: "1.5"},
		{name: "negative real discount", rate: "0.5", real: "-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLedgers()

			_, err := l.Notes.Append(l.Deliveries, day(2024, time.March, 4), dec(tt.rate), optDec(tt.real))
			assert.Error(t, err)
			assert.Equal(t, 0, l.Notes.Len())
		})
	}
}

func TestDebitNoteLedger_RateBounds(t *testing.T) {
	l := testLedgers()

	_, err := l.Notes.Append(l.Deliveries, day(2024, time.March, 4), dec("0"), nil)
	assert.NoError(t, err)

	_, err = l.Notes.Append(l.Deliveries, day(2024, time.March, 4), dec("1"), nil)
	assert.NoError(t, err)
}
