package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file next to name and renames it
// into place, creating parent directories as needed. Readers observe either
// the old content or the new content, never a partial write.
func WriteFileAtomic(fsys FS, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := fsys.CreateTemp(dir, "."+filepath.Base(name)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}

	// CreateTemp always produces 0600
	if err := fsys.Chmod(tmpName, perm); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}

	if err := fsys.Rename(tmpName, name); err != nil {
		_ = fsys.Remove(tmpName)
		return err
	}
	return nil
}

// CopyFile copies src over dst atomically, creating parent directories.
func CopyFile(fsys FS, src, dst string, perm fs.FileMode) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	return WriteFileAtomic(fsys, dst, data, perm)
}

// Exists reports whether name exists. Errors other than "not exist" count as
// existing so callers do not clobber something they cannot inspect.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// IsDir reports whether name exists and is a directory.
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
