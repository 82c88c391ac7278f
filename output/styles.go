// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Supplier returns a styled supplier name (yellow).
func (s *Styles) Supplier(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Amount returns a styled monetary amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Header returns a styled table header (bold).
func (s *Styles) Header(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}
