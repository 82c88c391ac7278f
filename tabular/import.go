package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

// RowError is a parse failure of one import row. Rows are counted from 1
// including the header, matching spreadsheet row numbers.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ImportResult reports how an import went. A row failure skips that row and
// the import continues; Errors holds one RowError per skipped row.
type ImportResult struct {
	Imported int
	Errors   []*RowError
}

// ImportDeliveries bulk-loads delivery records from a CSV or XLSX file into
// the ledgers and reconciles. Records are appended, never merged against
// existing ones. Header cells are matched case-insensitively against the
// delivery column names; unmatched columns are ignored, but all input
// columns must be present. A file-level problem (unreadable file, missing
// header columns) fails the import without touching ledger state.
func ImportDeliveries(l *ledger.Ledgers, path string) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported import format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		if err := importRow(l, index, row); err != nil {
			result.Errors = append(result.Errors, &RowError{Row: rowNum, Err: err})
			continue
		}
		result.Imported++
	}

	ledger.Reconcile(l)
	return result, nil
}

// headerIndex maps each required input column to its position in the header
// row.
func headerIndex(header []string) (map[string]int, error) {
	positions := map[string]int{}
	for i, cell := range header {
		positions[normalizeHeader(cell)] = i
	}

	index := map[string]int{}
	var missing []string
	for _, name := range importColumns {
		pos, ok := positions[normalizeHeader(name)]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[name] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func importRow(l *ledger.Ledgers, index map[string]int, row []string) error {
	cell := func(name string) string {
		pos := index[name]
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	date, err := ledger.ParseDate(cell(colDate))
	if err != nil {
		return err
	}
	supplier, err := ledger.ParseSupplier(cell(colSupplier))
	if err != nil {
		return err
	}
	document, err := ledger.ParseDocumentType(cell(colDocument))
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(cell(colQuantity))
	if err != nil {
		return fmt.Errorf("invalid quantity %q", cell(colQuantity))
	}
	crates, err := strconv.Atoi(cell(colCrates))
	if err != nil {
		return fmt.Errorf("invalid crates %q", cell(colCrates))
	}
	outbound, err := parseAmount(cell(colOutbound))
	if err != nil {
		return fmt.Errorf("invalid outbound weight %q", cell(colOutbound))
	}
	inbound, err := parseAmount(cell(colInbound))
	if err != nil {
		return fmt.Errorf("invalid inbound weight %q", cell(colInbound))
	}
	price, err := parseAmount(cell(colPrice))
	if err != nil {
		return fmt.Errorf("invalid unit price %q", cell(colPrice))
	}

	_, err = l.Deliveries.Append(date, supplier, quantity, outbound, inbound, document, crates, price)
	return err
}

// parseAmount accepts plain decimal strings plus the forms spreadsheets
// tend to produce: a leading dollar sign or a decimal comma.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	d, err := decimal.NewFromString(s)
	if err != nil && strings.Contains(s, ",") && !strings.Contains(s, ".") {
		return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	}
	return d, err
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
