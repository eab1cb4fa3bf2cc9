package diagfmt

import "polarconv/internal/diag"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsGiven prints the path the run was started with.
	PathModeAsGiven PathMode = iota
	// PathModeBasename strips directories.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// MinSeverity hides less important diagnostics. Info is hidden unless
	// this is diag.SevInfo.
	MinSeverity diag.Severity
	// ShowTitle appends the code title on its own line.
	ShowTitle bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode    PathMode
	MinSeverity diag.Severity
	Max         int // обрезка вывода, не Bag
}
