package cli

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-03-04")
	assert.NoError(t, err)
	assert.Equal(t, ledger.NewDate(2024, time.March, 4), d)

	d, err = parseDate("")
	assert.NoError(t, err)
	assert.Equal(t, ledger.Today(), d)

	_, err = parseDate("04/03/2024")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	d, err := parseAmount("amount", "12.50")
	assert.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = parseAmount("amount", "twelve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestSupplierList(t *testing.T) {
	list := supplierList()
	for _, s := range ledger.Suppliers() {
		assert.Contains(t, list, string(s))
	}
}

func TestChannelList(t *testing.T) {
	list := channelList()
	assert.Contains(t, list, string(ledger.ChannelATMPichincha))
	assert.Contains(t, list, string(ledger.ChannelBankBolivariano))
}
