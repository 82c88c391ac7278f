package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jimfa07/urban-octo-dollop/tabular"
	"github.com/jimfa07/urban-octo-dollop/telemetry"
)

type ImportCmd struct {
	File string `arg:"" help:"CSV or XLSX file with delivery rows." type:"existingfile"`
	Yes  bool   `help:"Skip the confirmation prompt when the ledger is not empty."`
}

func (cmd *ImportCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, fmt.Sprintf("import %s", cmd.File), func(collector telemetry.Collector) error {
		s, err := globals.open()
		if err != nil {
			return err
		}

		// Imports append, they never merge; make sure that is wanted.
		if s.ledgers.Deliveries.Len() > 0 && !cmd.Yes {
			confirmed, err := promptYesNo(fmt.Sprintf(
				"The ledger already holds %d deliveries; imported rows are appended, not merged. Continue?",
				s.ledgers.Deliveries.Len()))
			if err != nil {
				return err
			}
			if !confirmed {
				printInfof(ctx.Stdout, "aborted")
				return nil
			}
		}

		parseTimer := collector.Start("parse rows")
		result, err := tabular.ImportDeliveries(s.ledgers, cmd.File)
		parseTimer.End()
		if err != nil {
			return err
		}

		saveTimer := collector.Start("save snapshots")
		err = s.save()
		saveTimer.End()
		if err != nil {
			return err
		}

		for _, rowErr := range result.Errors {
			printError(ctx.Stderr, rowErr.Error())
		}
		if len(result.Errors) > 0 {
			printInfof(ctx.Stdout, "%d row(s) skipped", len(result.Errors))
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("%d delivery record(s) imported", result.Imported))
		return nil
	})
}

type ExportCmd struct {
	File string `arg:"" help:"Destination .csv or .xlsx file."`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	if err := tabular.ExportDeliveries(s.ledgers.Deliveries, cmd.File); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d delivery record(s) exported to %s",
		s.ledgers.Deliveries.Len(), cmd.File))
	return nil
}
