package polar

import "strings"

// CanonicalHeader is the first line of every native polar file.
const CanonicalHeader = "!pqPolarGenerator Exd format -- tws curves"

// CommentMarker starts every comment line of the native format.
const CommentMarker = '!'

// IsComment reports whether line is a native comment line (header included).
func IsComment(line string) bool {
	return len(line) > 0 && line[0] == CommentMarker
}

// IsCanonicalHeader reports whether line is the native format header.
// Trailing blanks are ignored so that a reformatted header is still
// recognized instead of being kept as a comment.
func IsCanonicalHeader(line string) bool {
	return strings.TrimRight(line, " \t\r") == CanonicalHeader
}
