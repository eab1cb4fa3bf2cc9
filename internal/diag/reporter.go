package diag

import "fmt"

// Reporter is the minimal contract for receiving diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// PathReporter is a convenience wrapper binding a file path to emitted
// diagnostics. A nil Next discards.
type PathReporter struct {
	Next Reporter
	Path string
}

func (r PathReporter) emit(sev Severity, code Code, line uint32, format string, args ...any) {
	if r.Next == nil {
		return
	}
	r.Next.Report(Diagnostic{
		Severity: sev,
		Code:     code,
		Path:     r.Path,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errorf emits a SevError diagnostic.
func (r PathReporter) Errorf(code Code, line uint32, format string, args ...any) {
	r.emit(SevError, code, line, format, args...)
}

// Warnf emits a SevWarning diagnostic.
func (r PathReporter) Warnf(code Code, line uint32, format string, args ...any) {
	r.emit(SevWarning, code, line, format, args...)
}

// Infof emits a SevInfo diagnostic.
func (r PathReporter) Infof(code Code, line uint32, format string, args ...any) {
	r.emit(SevInfo, code, line, format, args...)
}
