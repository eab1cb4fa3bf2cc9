package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the character set of an input file.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingLatin1      Encoding = "latin1"
	EncodingWindows1252 Encoding = "windows-1252"
	// EncodingUTF16 expects a byte order mark; without one little endian is assumed.
	EncodingUTF16 Encoding = "utf-16"
)

// ParseEncoding accepts the canonical names plus a few common aliases.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	case "utf-16", "utf16":
		return EncodingUTF16, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (expected utf-8|latin1|windows-1252|utf-16)", s)
	}
}

func (e Encoding) decoder() *encoding.Decoder {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder()
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder()
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	default:
		return nil
	}
}

// decode converts raw bytes to UTF-8. The second result reports whether a
// transcoding step ran.
func decode(raw []byte, enc Encoding) ([]byte, bool, error) {
	dec := enc.decoder()
	if dec == nil {
		return raw, false, nil
	}
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", enc, err)
	}
	return out, true, nil
}
