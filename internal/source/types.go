package source

// FileFlags encodes how the raw bytes were normalized on load.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileTranscoded marks content decoded from a non UTF-8 charset.
	FileTranscoded
)

// File holds one loaded input table, normalized to UTF-8 with '\n' line ends.
type File struct {
	Path     string
	Content  []byte
	Lines    []string // Content split on '\n'; a final newline does not add an empty line
	Hash     [32]byte // SHA-256 of the raw bytes as read, before any normalization
	Flags    FileFlags
	Encoding Encoding
}

// Has reports whether all bits of flag are set.
func (f *File) Has(flag FileFlags) bool {
	return f != nil && f.Flags&flag == flag
}
