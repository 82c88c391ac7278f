package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jimfa07/urban-octo-dollop/ledger"
	"github.com/jimfa07/urban-octo-dollop/output"
)

type ReportCmd struct {
	Weekly    WeeklyReportCmd    `cmd:"" help:"Totals and balances grouped by ISO week."`
	Monthly   MonthlyReportCmd   `cmd:"" help:"Debit note discounts grouped by calendar month."`
	Suppliers SuppliersReportCmd `cmd:"" help:"Delivered totals against deposits per supplier."`
}

type WeeklyReportCmd struct{}

func (cmd *WeeklyReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	weeks := ledger.WeeklySummary(s.ledgers)
	if len(weeks) == 0 {
		printInfof(ctx.Stdout, "no deliveries recorded")
		return nil
	}

	table := output.NewTable("Week", "Total", "Deposits", "Daily", "Balance").
		Right(1, 2, 3, 4)
	for _, w := range weeks {
		table.AddRow(
			fmt.Sprintf("%d-W%02d", w.Year, w.Week),
			w.Total.StringFixed(2),
			w.DepositTotal.StringFixed(2),
			w.DailyBalance.StringFixed(2),
			w.Cumulative.StringFixed(2),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}

type MonthlyReportCmd struct{}

func (cmd *MonthlyReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	months := ledger.MonthlyDiscounts(s.ledgers)
	if len(months) == 0 {
		printInfof(ctx.Stdout, "no debit notes recorded")
		return nil
	}

	table := output.NewTable("Month", "Possible", "Real").
		Right(1, 2)
	for _, m := range months {
		table.AddRow(
			fmt.Sprintf("%d-%02d", m.Year, int(m.Month)),
			m.PossibleDiscount.StringFixed(2),
			m.RealDiscount.StringFixed(2),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}

type SuppliersReportCmd struct{}

func (cmd *SuppliersReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open()
	if err != nil {
		return err
	}

	totals := ledger.SupplierTotals(s.ledgers)
	if len(totals) == 0 {
		printInfof(ctx.Stdout, "no deliveries recorded")
		return nil
	}

	table := output.NewTable("Supplier", "Delivered", "Deposited", "Difference").
		Right(1, 2, 3)
	for _, st := range totals {
		table.AddRow(
			string(st.Supplier),
			st.Total.StringFixed(2),
			st.DepositTotal.StringFixed(2),
			st.DepositTotal.Sub(st.Total).StringFixed(2),
		)
	}

	table.Render(ctx.Stdout, output.NewStyles(ctx.Stdout))
	return nil
}
