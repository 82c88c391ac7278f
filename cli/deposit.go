package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/jimfa07/urban-octo-dollop/ledger"
	"github.com/jimfa07/urban-octo-dollop/output"
)

type DepositCmd struct {
	Add    DepositAddCmd    `cmd:"" help:"Record a bank deposit."`
	Remove DepositRemoveCmd `cmd:"" help:"Remove a deposit record by id."`
	List   DepositListCmd   `cmd:"" help:"List all deposit records."`
}

type DepositAddCmd struct {
	Date     string `help:"Deposit date (YYYY-MM-DD, defaults to today)."`
	Supplier string `help:"Supplier the deposit is for." required:""`
	Channel  string `help:"Bank agency the deposit went through." required:""`
	Amount   string `help:"Deposit amount." required:""`
}

func (cmd *DepositAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}
	supplier, err := ledger.ParseSupplier(cmd.Supplier)
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, supplierList())
	}
	channel, err := ledger.ParseDepositChannel(cmd.Channel)
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, channelList())
	}
	amount, err := parseAmount("amount", cmd.Amount)
	if err != nil {
		return err
	}

	s, err := globals.open()
	if err != nil {
		return err
	}

	r, err := s.ledgers.Deposits.Append(date, supplier, channel, amount)
	if err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s of $%s for %s recorded (group %s)",
		r.Document, r.Amount.StringFixed(2), r.Supplier, r.Group))
	return nil
}

type DepositRemoveCmd struct {
	ID  string `arg:"" help:"Deposit record id."`
	Yes bool   `help:"Skip the confirmation prompt."`
}

func (cmd *DepositRemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("invalid record id %q", cmd.ID)
	}

	s, err := globals.open()
	if err != nil {
		return err
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo("Remove this deposit?")
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}
	}

	if err := s.ledgers.Deposits.Remove(id); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "deposit removed")
	return nil
}

type DepositListCmd struct{}

func (cmd *DepositListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	records := s.ledgers.Deposits.All()
	if len(records) == 0 {
		printInfof(ctx.Stdout, "no deposits recorded")
		return nil
	}

	table := output.NewTable("N", "Date", "Supplier", "Channel", "Document", "Amount", "ID").
		Right(5)
	for _, r := range records {
		table.AddRow(
			r.Group,
			r.Date.String(),
			string(r.Supplier),
			string(r.Channel),
			r.Document,
			r.Amount.StringFixed(2),
			r.ID.String(),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}

func channelList() string {
	names := make([]string, 0, len(ledger.DepositChannels()))
	for _, c := range ledger.DepositChannels() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
