package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jimfa07/urban-octo-dollop/output"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Record a debit note discount."`
	Remove NoteRemoveCmd `cmd:"" help:"Remove a debit note by id."`
	List   NoteListCmd   `cmd:"" help:"List all debit notes."`
}

type NoteAddCmd struct {
	Date string `help:"Note date (YYYY-MM-DD, defaults to today)."`
	Rate string `help:"Discount rate as a fraction between 0 and 1." required:""`
	Real string `help:"Real discount amount actually granted (optional)."`
}

func (cmd *NoteAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	date, err := parseDate(cmd.Date)
	if err != nil {
		return err
	}
	rate, err := parseAmount("rate", cmd.Rate)
	if err != nil {
		return err
	}

	var real *decimal.Decimal
	if cmd.Real != "" {
		d, err := parseAmount("real discount", cmd.Real)
		if err != nil {
			return err
		}
		real = &d
	}

	s, err := globals.open()
	if err != nil {
		return err
	}

	n, err := s.ledgers.Notes.Append(s.ledgers.Deliveries, date, rate, real)
	if err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	msg := fmt.Sprintf("debit note recorded: %s lb on %s, possible discount $%s",
		n.Pounds.StringFixed(2), n.Date, n.PossibleDiscount.StringFixed(2))
	if n.RealDiscount != nil {
		msg += fmt.Sprintf(", real discount $%s applied to balances from %s on",
			n.RealDiscount.StringFixed(2), n.Date)
	}
	printSuccess(ctx.Stdout, msg)
	return nil
}

type NoteRemoveCmd struct {
	ID  string `arg:"" help:"Debit note record id."`
	Yes bool   `help:"Skip the confirmation prompt."`
}

func (cmd *NoteRemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("invalid record id %q", cmd.ID)
	}

	s, err := globals.open()
	if err != nil {
		return err
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo("Remove this debit note?")
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}
	}

	if err := s.ledgers.Notes.Remove(id); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "debit note removed")
	return nil
}

type NoteListCmd struct{}

func (cmd *NoteListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	records := s.ledgers.Notes.All()
	if len(records) == 0 {
		printInfof(ctx.Stdout, "no debit notes recorded")
		return nil
	}

	table := output.NewTable("Date", "Rate", "Lb", "Possible", "Real", "ID").
		Right(1, 2, 3, 4)
	for _, n := range records {
		real := "-"
		if n.RealDiscount != nil {
			real = n.RealDiscount.StringFixed(2)
		}
		table.AddRow(
			n.Date.String(),
			n.Rate.String(),
			n.Pounds.StringFixed(2),
			n.PossibleDiscount.StringFixed(2),
			real,
			n.ID.String(),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}
