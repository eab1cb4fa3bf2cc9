package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"polarconv/internal/format"
	"polarconv/internal/polar"
)

// FormatTablePretty prints one block per TWS curve.
func FormatTablePretty(w io.Writer, t *polar.Table) error {
	for _, c := range t.Comments() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	for i, tws := range t.TWS() {
		curve := t.Curve(i)
		if _, err := fmt.Fprintf(w, "TWS %s (%d pair(s))\n", shortest(tws), len(curve)); err != nil {
			return err
		}
		for _, p := range curve {
			if _, err := fmt.Fprintf(w, "  %10s  %10s\n", shortest(p.TWA), shortest(p.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}

func shortest(v float64) string {
	return string(format.FormatNumber(nil, v, -1))
}

// FormatTableJSON prints the table view as indented JSON. JSON has no
// infinity or NaN, so a table holding one is rejected before anything is
// written.
func FormatTableJSON(w io.Writer, t *polar.Table) error {
	if err := checkFinite(t); err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t.View())
}

func checkFinite(t *polar.Table) error {
	for i, n := 0, t.Len(); i < n; i++ {
		tws := t.TWS()[i]
		if math.IsInf(tws, 0) || math.IsNaN(tws) {
			return fmt.Errorf("TWS %g cannot be written as JSON (use --format yaml)", tws)
		}
		for _, p := range t.Curve(i) {
			if math.IsInf(p.TWA, 0) || math.IsNaN(p.TWA) || math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
				return fmt.Errorf("TWS %g: entry at TWA %g with value %g cannot be written as JSON (use --format yaml)",
					tws, p.TWA, p.Value)
			}
		}
	}
	return nil
}

// FormatTableYAML prints the table view as YAML.
func FormatTableYAML(w io.Writer, t *polar.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.View()); err != nil {
		return err
	}
	return enc.Close()
}

// FormatTable dispatches on a format name: pretty, json or yaml.
func FormatTable(w io.Writer, t *polar.Table, name string) error {
	switch strings.ToLower(name) {
	case "", "pretty":
		return FormatTablePretty(w, t)
	case "json":
		return FormatTableJSON(w, t)
	case "yaml", "yml":
		return FormatTableYAML(w, t)
	default:
		return fmt.Errorf("unknown format %q (want pretty|json|yaml)", name)
	}
}
