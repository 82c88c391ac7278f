package ledger

import "fmt"

// DepositChannel is the route a deposit took into a supplier's account:
// either an ATM ("Cajero Automático") or a bank branch.
type DepositChannel string

const (
	ChannelATMPichincha   DepositChannel = "Cajero Automático Pichincha"
	ChannelATMPacifico    DepositChannel = "Cajero Automático Pacífico"
	ChannelATMGuayaquil   DepositChannel = "Cajero Automático Guayaquil"
	ChannelATMBolivariano DepositChannel = "Cajero Automático Bolivariano"

	ChannelBankPichincha   DepositChannel = "Banco Pichincha"
	ChannelBankPacifico    DepositChannel = "Banco del Pacífico"
	ChannelBankGuayaquil   DepositChannel = "Banco de Guayaquil"
	ChannelBankBolivariano DepositChannel = "Banco Bolivariano"
)

// Document labels recorded on a deposit depending on its channel. ATM
// deposits are cash deposits; branch deposits are account transfers.
const (
	DocumentLabelDeposit  = "Deposit"
	DocumentLabelTransfer = "Transfer"
)

// DepositChannels returns all recognized deposit channels, ATMs first.
func DepositChannels() []DepositChannel {
	return []DepositChannel{
		ChannelATMPichincha,
		ChannelATMPacifico,
		ChannelATMGuayaquil,
		ChannelATMBolivariano,
		ChannelBankPichincha,
		ChannelBankPacifico,
		ChannelBankGuayaquil,
		ChannelBankBolivariano,
	}
}

// ParseDepositChannel matches s against the recognized channels.
func ParseDepositChannel(s string) (DepositChannel, error) {
	for _, known := range DepositChannels() {
		if string(known) == s {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown deposit channel %q", s)
}

func (c DepositChannel) Valid() bool {
	for _, known := range DepositChannels() {
		if c == known {
			return true
		}
	}
	return false
}

// IsATM reports whether the channel is an ATM deposit.
func (c DepositChannel) IsATM() bool {
	switch c {
	case ChannelATMPichincha, ChannelATMPacifico, ChannelATMGuayaquil, ChannelATMBolivariano:
		return true
	}
	return false
}

// DocumentLabel returns the document label recorded for deposits made
// through this channel.
func (c DepositChannel) DocumentLabel() string {
	if c.IsATM() {
		return DocumentLabelDeposit
	}
	return DocumentLabelTransfer
}
