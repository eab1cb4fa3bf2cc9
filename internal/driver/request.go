package driver

import (
	"fmt"
	"io"
	"strings"

	"polarconv/internal/parser"
	"polarconv/internal/resolve"
	"polarconv/internal/source"
)

// Command selects the input layout of a run. Output is always native.
type Command uint8

const (
	// Convert reads a generic TWA-major table.
	Convert Command = iota + 1
	// Clean reads a native table.
	Clean
)

func (c Command) String() string {
	switch c {
	case Convert:
		return "convert"
	case Clean:
		return "clean"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Layout names an input file layout.
type Layout uint8

const (
	LayoutGeneric Layout = iota + 1
	LayoutNative
)

// ParseLayout accepts "generic" or "native".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "csv", "twa":
		return LayoutGeneric, nil
	case "native", "pol", "tws":
		return LayoutNative, nil
	default:
		return 0, fmt.Errorf("unknown input layout %q (want generic|native)", s)
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutGeneric:
		return "generic"
	case LayoutNative:
		return "native"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Layout returns the input layout the command reads.
func (c Command) Layout() Layout {
	if c == Convert {
		return LayoutGeneric
	}
	return LayoutNative
}

// ReadRequest describes one table read.
type ReadRequest struct {
	Path     string
	Layout   Layout
	Encoding source.Encoding
	// Detector overrides native delimiter detection. Nil auto-detects.
	Detector parser.Detector
	// Echo mirrors every input line and the delimiter. Nil disables.
	Echo           io.Writer
	MaxDiagnostics int
}

// Request describes a full convert or clean run.
type Request struct {
	Command  Command
	Input    string
	Output   string
	Encoding source.Encoding
	Detector parser.Detector
	Resolver resolve.Resolver
	// Cache remembers answers per input content. Nil disables.
	Cache *resolve.DecisionCache
	// Precision is passed to the writer; see format.Options.
	Precision      int
	Echo           io.Writer
	MaxDiagnostics int
}
