package output

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how a table column is padded.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table renders rows as aligned monospace columns. Column widths are
// measured with runewidth so wide characters line up. Numeric columns
// should be right-aligned.
type Table struct {
	Headers []string
	Aligns  []Alignment
	rows    [][]string
}

// NewTable creates a table with the given headers. Columns default to left
// alignment; set Aligns to override per column.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Aligns:  make([]Alignment, len(headers)),
	}
}

// Right marks the given column indexes as right-aligned and returns the
// table for chaining.
func (t *Table) Right(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.Aligns) {
			t.Aligns[c] = AlignRight
		}
	}
	return t
}

// AddRow appends a row. Rows shorter than the header are padded with empty
// cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table. Headers are styled when styles is non-nil.
func (t *Table) Render(w io.Writer, styles *Styles) {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cell := pad(h, widths[i], t.Aligns[i])
		if styles != nil {
			cell = styles.Header(cell)
		}
		header[i] = cell
	}
	_, _ = io.WriteString(w, strings.Join(header, "  ")+"\n")

	rule := make([]string, len(t.Headers))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	_, _ = io.WriteString(w, strings.Join(rule, "──")+"\n")

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], t.Aligns[i])
		}
		_, _ = io.WriteString(w, strings.Join(cells, "  ")+"\n")
	}
}

// pad aligns a cell within width terminal columns.
func pad(s string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
