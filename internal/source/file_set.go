// Package source loads source files and maps byte offsets to lines.
package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"
	"sync"

	"fortio.org/safecast"
)

// FileSet holds loaded files. It is safe for concurrent use.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet whose paths are reported relative to baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]*File, 0),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory, or the working directory if unset.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add stores normalized content and returns a new FileID. Adding the same
// path again creates a new version; GetByPath returns the latest one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	return fs.add(path, content, flags, nil)
}

func (fs *FileSet) add(path string, content []byte, flags FileFlags, droppedCR []uint32) FileID {
	f := &File{
		Path:      normalizePath(path),
		Content:   content,
		LineIdx:   buildLineIndex(content),
		Hash:      sha256.Sum256(content),
		Flags:     flags,
		DroppedCR: droppedCR,
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	f.ID = FileID(n)
	fs.files = append(fs.files, f)
	fs.index[f.Path] = f.ID
	return f.ID
}

// Load reads a file from disk, strips a BOM, normalizes CRLF and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, droppedCR := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if len(droppedCR) > 0 {
		flags |= FileNormalizedCRLF
	}
	return fs.add(path, content, flags, droppedCR), nil
}

// AddVirtual adds in-memory content with the FileVirtual flag.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil if unknown.
func (fs *FileSet) Get(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

// GetByPath returns the latest file loaded under path.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return fs.files[id], true
}

// Position converts a byte offset into a line and column.
func (f *File) Position(offset int) LineCol {
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		off = 0
	}
	size, err := safecast.Conv[uint32](len(f.Content))
	if err == nil && off > size {
		off = size
	}
	return toLineCol(f.LineIdx, off)
}

// DiskOffset maps a Content offset back to the byte offset in the file as
// it was read, before the BOM and CRLF normalization.
func (f *File) DiskOffset(offset int) int {
	if offset < 0 {
		return offset
	}
	disk := offset
	if f.Flags&FileHadBOM != 0 {
		disk += len(utf8BOM)
	}
	return disk + sort.Search(len(f.DroppedCR), func(i int) bool {
		return int(f.DroppedCR[i]) > offset
	})
}

// GetLine returns the 1-based line without its newline, or "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if lineNum > 1 {
		start = int(f.LineIdx[lineNum-2]) + 1
	}
	end := len(f.Content)
	if int(lineNum) <= len(f.LineIdx) {
		end = int(f.LineIdx[lineNum-1])
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// DisplayPath returns the path relative to baseDir when it is shorter.
func (f *File) DisplayPath(baseDir string) string {
	if baseDir == "" || f.Flags&FileVirtual != 0 {
		return f.Path
	}
	if rel, ok := relativeTo(f.Path, baseDir); ok {
		return rel
	}
	return f.Path
}
