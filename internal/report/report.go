// Package report renders a construction tally as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/papapumpkin/roadworks/internal/manifest"
	"github.com/papapumpkin/roadworks/internal/tally"
)

const (
	title       = "!!! Road Construction Report !!!"
	titleRule   = "--------------------------------"
	sectionRule = "-----"
)

// Render writes the report for t to w. The only possible error is a write
// failure on w.
func Render(w io.Writer, t *tally.Tally) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, titleRule)

	fmt.Fprintln(bw, "Road Segments:")
	for _, name := range t.Segments {
		fmt.Fprintln(bw, name)
	}
	fmt.Fprintln(bw, sectionRule)

	fmt.Fprintf(bw, "Crystal Total: %d\n", t.Crystal)
	fmt.Fprintln(bw, sectionRule)

	writeManifest(bw, "Metal Manifest:", t.Metal)
	fmt.Fprintln(bw, sectionRule)

	writeManifest(bw, "Ceramic Manifest:", t.Ceramic)

	return bw.Flush()
}

// writeManifest lists the non-zero unit counts, largest size first.
func writeManifest(w io.Writer, heading string, m *manifest.Manifest) {
	fmt.Fprintln(w, heading)
	label := m.Material().Label()
	for _, l := range m.Lines() {
		fmt.Fprintf(w, "%d x %s (%d)\n", l.Count, label, l.Size)
	}
}
