package filesystem

import (
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs to FS. Both the real and the in-memory
// filesystem go through it.
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps any afero filesystem
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns the operating system filesystem
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory returns an in-memory filesystem, mostly useful in tests
func NewMemory() FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// regular fails with fs.ErrInvalid when name is a directory
func (a *aferoFS) regular(op, name string) error {
	info, err := a.fs.Stat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return nil
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	if err := a.regular("open", name); err != nil {
		return nil, err
	}
	return a.fs.Open(name)
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	if err := a.regular("read", name); err != nil {
		return nil, err
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Chmod(name string, mode fs.FileMode) error {
	return a.fs.Chmod(name, mode)
}

// ReadDir lists name sorted by file name
func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

// MkdirTemp creates a 0700 directory with a random suffix
func (a *aferoFS) MkdirTemp(dir, prefix string) (string, error) {
	return afero.TempDir(a.fs, dir, prefix)
}

func (a *aferoFS) CreateTemp(dir, prefix string) (File, error) {
	return afero.TempFile(a.fs, dir, prefix)
}
