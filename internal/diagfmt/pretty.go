// Package diagfmt renders diagnostics and parsed tables for the console.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"polarconv/internal/diag"
)

func formatPath(path string, mode PathMode) string {
	if mode == PathModeBasename && path != "" {
		return filepath.Base(path)
	}
	return path
}

func location(d *diag.Diagnostic, mode PathMode) string {
	path := formatPath(d.Path, mode)
	switch {
	case path == "":
		return "<input>"
	case d.Line == 0:
		return path
	default:
		return fmt.Sprintf("%s:%d", path, d.Line)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// Pretty writes one line per diagnostic:
//
//	<path>:<line>: <SEV> <CODE>: <message>
//
// The bag is expected to be sorted. A trailing line reports how many
// diagnostics were dropped over the bag capacity.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	items := bag.Items()
	for i := range items {
		d := &items[i]
		if d.Severity < opts.MinSeverity {
			continue
		}
		sev := severityColor(d.Severity)
		loc := color.New(color.Bold)
		if opts.Color {
			sev.EnableColor()
			loc.EnableColor()
		} else {
			sev.DisableColor()
			loc.DisableColor()
		}
		fmt.Fprintf(w, "%s: %s: %s\n",
			loc.Sprint(location(d, opts.PathMode)),
			sev.Sprintf("%s %s", d.Severity, d.Code.ID()),
			d.Message)
		if opts.ShowTitle {
			fmt.Fprintf(w, "  = %s\n", d.Code.Title())
		}
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostic(s) not shown (limit %d)\n", n, bag.Cap())
	}
}
