package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/jimfa07/urban-octo-dollop/ledger"
	"github.com/jimfa07/urban-octo-dollop/output"
	"github.com/jimfa07/urban-octo-dollop/telemetry"
)

type DeliveryCmd struct {
	Add    DeliveryAddCmd    `cmd:"" help:"Record a supplier delivery."`
	Remove DeliveryRemoveCmd `cmd:"" help:"Remove a delivery record by id."`
	List   DeliveryListCmd   `cmd:"" help:"List all delivery records."`
}

type DeliveryAddCmd struct {
	Date     string `help:"Delivery date (YYYY-MM-DD, defaults to today)."`
	Supplier string `help:"Supplier name." required:""`
	Quantity int    `help:"Number of units delivered." required:""`
	Outbound string `help:"Outbound weight in kg." required:""`
	Inbound  string `help:"Inbound weight in kg." required:""`
	Document string `help:"Document type (Invoice, DebitNote, CreditNote)." default:"Invoice"`
	Crates   int    `help:"Number of crates." default:"0"`
	Price    string `help:"Unit price per pound." required:""`
}

func (cmd *DeliveryAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "delivery add", func(collector telemetry.Collector) error {
		date, err := parseDate(cmd.Date)
		if err != nil {
			return err
		}
		supplier, err := ledger.ParseSupplier(cmd.Supplier)
		if err != nil {
			return fmt.Errorf("%w (known: %s)", err, supplierList())
		}
		document, err := ledger.ParseDocumentType(cmd.Document)
		if err != nil {
			return err
		}
		outbound, err := parseAmount("outbound weight", cmd.Outbound)
		if err != nil {
			return err
		}
		inbound, err := parseAmount("inbound weight", cmd.Inbound)
		if err != nil {
			return err
		}
		price, err := parseAmount("unit price", cmd.Price)
		if err != nil {
			return err
		}

		s, err := globals.open()
		if err != nil {
			return err
		}

		r, err := s.ledgers.Deliveries.Append(date, supplier, cmd.Quantity, outbound, inbound, document, cmd.Crates, price)
		if err != nil {
			return err
		}

		saveTimer := collector.Start("reconcile and save")
		err = s.save()
		saveTimer.End()
		if err != nil {
			return err
		}

		printSuccess(ctx.Stdout, fmt.Sprintf("delivery %s recorded: %s lb at $%s = $%s (balance %s)",
			r.ID, r.RemainingLb.StringFixed(2), r.Price.String(), r.Total.StringFixed(2), r.Cumulative.StringFixed(2)))
		return nil
	})
}

type DeliveryRemoveCmd struct {
	ID  string `arg:"" help:"Delivery record id."`
	Yes bool   `help:"Skip the confirmation prompt."`
}

func (cmd *DeliveryRemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("invalid record id %q", cmd.ID)
	}

	s, err := globals.open()
	if err != nil {
		return err
	}

	r, ok := s.ledgers.Deliveries.Get(id)
	if !ok {
		return &ledger.NotFoundError{Kind: "delivery", ID: id}
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Remove delivery of %s on %s (%s lb)?",
			r.Supplier, r.Date, r.RemainingLb.StringFixed(2)))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}
	}

	if err := s.ledgers.Deliveries.Remove(id); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "delivery removed")
	return nil
}

type DeliveryListCmd struct{}

func (cmd *DeliveryListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	records := s.ledgers.Deliveries.All()
	if len(records) == 0 {
		printInfof(ctx.Stdout, "no deliveries recorded")
		return nil
	}

	table := output.NewTable("No", "Date", "Supplier", "Qty", "Lb", "Total", "Deposit", "Daily", "Balance", "ID").
		Right(3, 4, 5, 6, 7, 8)
	for _, r := range records {
		table.AddRow(
			strconv.Itoa(r.Sequence),
			r.Date.String(),
			string(r.Supplier),
			strconv.Itoa(r.Quantity),
			r.RemainingLb.StringFixed(2),
			r.Total.StringFixed(2),
			r.DepositTotal.StringFixed(2),
			r.DailyBalance.StringFixed(2),
			r.Cumulative.StringFixed(2),
			r.ID.String(),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}

func supplierList() string {
	names := make([]string, 0, len(ledger.Suppliers()))
	for _, s := range ledger.Suppliers() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
