package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// Shared test helpers.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) Date {
	return NewDate(year, month, d)
}

func mustDelivery(t *testing.T, l *Ledgers, date Date, supplier Supplier, quantity int, outbound, inbound, price string) *DeliveryRecord {
	t.Helper()
	r, err := l.Deliveries.Append(date, supplier, quantity, dec(outbound), dec(inbound), DocumentInvoice, 10, dec(price))
	assert.NoError(t, err)
	return r
}

func mustDeposit(t *testing.T, l *Ledgers, date Date, supplier Supplier, channel DepositChannel, amount string) *DepositRecord {
	t.Helper()
	r, err := l.Deposits.Append(date, supplier, channel, dec(amount))
	assert.NoError(t, err)
	return r
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

// optDec parses an optional decimal; the empty string means absent.
func optDec(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := decimal.RequireFromString(s)
	return &d
}

func testLedgers() *Ledgers {
	return NewLedgers(dec("-35.00"))
}
