package filesystem

import (
	"io"
	"io/fs"
)

// FS is the filesystem surface used to read color tables and write exports
type FS interface {
	// Streaming access
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Whole-file access
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
