// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the read operations the loader and config layers need,
// enabling testability through an in-memory implementation while using the OS
// filesystem in production.
//
// Key interfaces:
//   - FileSystemProvider: Opens, reads and stats files by path
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
