package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

func opening() decimal.Decimal {
	return decimal.RequireFromString("-35.00")
}

func TestStore_ColdStart(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist-yet"))

	l, err := s.Load(opening())
	assert.NoError(t, err, "missing snapshots are a cold start, not an error")
	assert.Equal(t, 0, l.Deliveries.Len())
	assert.Equal(t, 0, l.Deposits.Len())
	assert.Equal(t, 0, l.Notes.Len())
	assert.True(t, l.OpeningBalance.Equal(opening()))
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	l := ledger.NewLedgers(opening())
	date := ledger.NewDate(2024, time.March, 4)

	_, err := l.Deliveries.Append(date, ledger.SupplierLiris, 40,
		decimal.NewFromInt(100), decimal.NewFromInt(10),
		ledger.DocumentInvoice, 12, decimal.RequireFromString("0.65"))
	assert.NoError(t, err)

	_, err = l.Deposits.Append(date, ledger.SupplierLiris, ledger.ChannelATMPichincha, decimal.RequireFromString("50.00"))
	assert.NoError(t, err)

	real := decimal.RequireFromString("3.50")
	_, err = l.Notes.Append(l.Deliveries, date, decimal.RequireFromString("0.02"), &real)
	assert.NoError(t, err)

	ledger.Reconcile(l)
	assert.NoError(t, s.Save(l))

	loaded, err := s.Load(opening())
	assert.NoError(t, err)

	assert.Equal(t, 1, loaded.Deliveries.Len())
	assert.Equal(t, 1, loaded.Deposits.Len())
	assert.Equal(t, 1, loaded.Notes.Len())

	want := l.Deliveries.All()[0]
	got := loaded.Deliveries.All()[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Date, got.Date)
	assert.Equal(t, want.Supplier, got.Supplier)
	assert.Equal(t, want.Document, got.Document)
	assert.Equal(t, want.Sequence, got.Sequence)
	assert.True(t, got.RemainingLb.Equal(want.RemainingLb))
	assert.True(t, got.Cumulative.Equal(want.Cumulative), "reconciled balance survives the round trip")

	dep := loaded.Deposits.All()[0]
	assert.Equal(t, "01", dep.Group)
	assert.Equal(t, ledger.DocumentLabelDeposit, dep.Document)

	note := loaded.Notes.All()[0]
	assert.True(t, note.RealDiscount != nil)
	assert.True(t, note.RealDiscount.Equal(real))
}

func TestStore_CorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, DeliveriesFile), []byte("{not json"), 0o644))

	s := New(dir)
	_, err := s.Load(opening())

	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr), "corrupt data must be a StorageError, not a cold start")
	assert.Equal(t, "decode", storageErr.Op)
}

func TestStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	assert.NoError(t, s.Save(ledger.NewLedgers(opening())))

	for _, f := range s.Files() {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
}

func TestStore_EmptyLedgersSaveAsArrays(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	assert.NoError(t, s.Save(ledger.NewLedgers(opening())))

	raw, err := os.ReadFile(filepath.Join(dir, DepositsFile))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
