package diag

// Severity ranks a diagnostic. Codes are numbered by it: 1xxx errors,
// 2xxx warnings, 3xxx info.
type Severity uint8

const (
	// SevInfo notes input that was skipped on purpose, such as a blank line
	// or an identical duplicate entry.
	SevInfo Severity = iota
	// SevWarning flags input that was accepted but probably not as its author
	// meant, such as a repeated TWA row or a dropped field.
	SevWarning
	// SevError aborts the read; no output is written.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// letter is the prefix of a code ID.
func (s Severity) letter() byte {
	switch s {
	case SevInfo:
		return 'I'
	case SevWarning:
		return 'W'
	}
	return 'E'
}

// Severity returns the severity implied by the code's range. Codes outside
// the known ranges are errors.
func (c Code) Severity() Severity {
	switch c / 1000 {
	case 2:
		return SevWarning
	case 3:
		return SevInfo
	}
	return SevError
}
