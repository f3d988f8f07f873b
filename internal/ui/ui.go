// Package ui prints diagnostics on the error channel. Report output never
// goes through this package.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled diagnostics to a writer, normally os.Stderr.
// Styling is dropped when the writer is not a colour terminal.
type Printer struct {
	w     io.Writer
	err   lipgloss.Style
	label lipgloss.Style
}

// New returns a Printer for os.Stderr.
func New() *Printer {
	return NewWriter(os.Stderr)
}

// NewWriter returns a Printer that writes to w.
func NewWriter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		err:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		label: r.NewStyle().Faint(true),
	}
}

// Error prints a single failure line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.err.Render("error:"), msg)
}

// Hint prints a secondary line under an error, such as the expected header.
func (p *Printer) Hint(msg string) {
	fmt.Fprintf(p.w, "  %s\n", p.label.Render(msg))
}
