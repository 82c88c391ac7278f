package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

// ExportDeliveries writes the full delivery ledger to path, as CSV or XLSX
// depending on the file extension.
func ExportDeliveries(l *ledger.DeliveryLedger, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return exportCSV(l, path)
	case ".xlsx":
		return exportXLSX(l, path)
	default:
		return fmt.Errorf("unsupported export format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// deliveryRow renders one record in export column order. Currency columns
// are fixed to two decimals for display; weights keep their full precision
// so a re-import reproduces the same records.
func deliveryRow(r *ledger.DeliveryRecord) []string {
	return []string{
		strconv.Itoa(r.Sequence),
		r.Date.String(),
		string(r.Supplier),
		r.Product,
		strconv.Itoa(r.Quantity),
		r.Outbound.String(),
		r.Inbound.String(),
		string(r.Document),
		strconv.Itoa(r.Crates),
		r.Price.String(),
		r.Average.StringFixed(2),
		r.RemainingKg.String(),
		r.RemainingLb.String(),
		r.Total.StringFixed(2),
		r.DepositTotal.StringFixed(2),
		r.DailyBalance.StringFixed(2),
		r.Cumulative.StringFixed(2),
	}
}

func exportCSV(l *ledger.DeliveryLedger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(deliveryColumns); err != nil {
		return err
	}
	for _, r := range l.All() {
		if err := w.Write(deliveryRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func exportXLSX(l *ledger.DeliveryLedger, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, len(deliveryColumns))
	for i, name := range deliveryColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range l.All() {
		cells := deliveryRow(r)
		row := make([]interface{}, len(cells))
		for j, cell := range cells {
			row[j] = cell
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
