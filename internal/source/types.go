package source

type (
	// FileID identifies a file within a FileSet.
	FileID uint32
	// FileFlags records how a file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (editor buffer, stdin, test).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
	// DroppedCR holds the Content offset of every '\n' whose '\r' was
	// stripped on load, in ascending order.
	DroppedCR []uint32
}

// LineCol is a human-readable position.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
