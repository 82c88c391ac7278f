package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTable_Render(t *testing.T) {
	table := NewTable("Supplier", "Total").Right(1)
	table.AddRow("LIRIS SA", "128.97")
	table.AddRow("Medina", "9.00")

	var buf bytes.Buffer
	table.Render(&buf, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "Supplier   Total", lines[0])
	assert.Equal(t, "LIRIS SA  128.97", lines[2])
	assert.Equal(t, "Medina      9.00", lines[3])
}

func TestTable_ShortRowsPadded(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("only")

	var buf bytes.Buffer
	table.Render(&buf, nil)
	assert.Equal(t, 1, table.Len())
	assert.Contains(t, buf.String(), "only")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", pad("ab", 5, AlignRight))
	assert.Equal(t, "abcdef", pad("abcdef", 3, AlignLeft))
}
