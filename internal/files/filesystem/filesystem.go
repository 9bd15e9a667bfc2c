package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read access to files by path.
type FileSystemProvider interface {
	// Open opens the file at path for streaming reads.
	// The caller must close the returned reader.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
