package diag

// Diagnostic is one finding about an input file.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string
	Line     uint32
	Message  string
}
