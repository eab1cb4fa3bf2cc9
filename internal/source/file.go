package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// Load reads path from disk, decodes it from enc to UTF-8, strips a UTF-8
// byte order mark and normalizes CRLF line ends.
func Load(path string, enc Encoding) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return build(path, raw, enc, 0)
}

// FromBytes builds a virtual file (test, stdin) from memory.
func FromBytes(name string, raw []byte, enc Encoding) (*File, error) {
	return build(name, raw, enc, FileVirtual)
}

func build(path string, raw []byte, enc Encoding, flags FileFlags) (*File, error) {
	if enc == "" {
		enc = EncodingUTF8
	}
	hash := sha256.Sum256(raw)

	content, transcoded, err := decode(raw, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if transcoded {
		flags |= FileTranscoded
	}
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	return &File{
		Path:     path,
		Content:  content,
		Lines:    splitLines(content),
		Hash:     hash,
		Flags:    flags,
		Encoding: enc,
	}, nil
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.Lines))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n
}

// Line returns the 1-based line lineNum, or "" if it does not exist.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 || lineNum > f.LineCount() {
		return ""
	}
	return f.Lines[lineNum-1]
}
