package filesystem

import (
	"io"
	"io/fs"
)

// File is a writable temporary file handle.
type File interface {
	io.Writer
	io.Closer
	Name() string
}

// FS is the filesystem surface used by the manifest and installer packages.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	Chmod(name string, mode fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// MkdirTemp creates a new directory in dir whose name begins with prefix.
	MkdirTemp(dir, prefix string) (string, error)

	// CreateTemp creates a new file in dir whose name begins with prefix.
	CreateTemp(dir, prefix string) (File, error)
}
