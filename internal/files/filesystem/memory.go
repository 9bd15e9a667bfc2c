package filesystem

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	modTime time.Time
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are normalized to forward slashes. Safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]memoryFile),
	}
}

// AddFile adds or replaces a file in the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[normalize(filePath)] = memoryFile{content: []byte(content), modTime: time.Now()}
}

func (mfs *MemoryFileSystem) lookup(filePath string) (memoryFile, string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p := normalize(filePath)
	f, ok := mfs.files[p]
	if !ok {
		return memoryFile{}, p, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return f, p, nil
}

func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	f, _, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	f, _, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), f.content...), nil
}

func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	f, p, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return &memoryFileInfo{name: path.Base(p), size: int64(len(f.content)), modTime: f.modTime}, nil
}

func normalize(filePath string) string {
	return path.Clean(filepath.ToSlash(filePath))
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
