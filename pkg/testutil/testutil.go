package testutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetTestChecksum returns the manifest digest of content: lowercase hex SHA-256
func GetTestChecksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// CreateFile writes content to dir/name, creating parents, and returns the path.
// name uses forward slashes.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "write %s", path)
	return path
}

// CreateDir creates parent/name and returns its path
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(path, 0755), "mkdir %s", path)
	return path
}

// ReadFile returns the content at path
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(data)
}

// FileExists reports whether path is a regular file
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path is a directory
func DirExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SnapshotTree maps every regular file under root, by slash separated
// relative path, to its content. Two equal snapshots mean byte-identical trees.
func SnapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err, "snapshot %s", root)
	return snap
}

// ListDir returns the entry names directly under dir, sorted
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "list %s", dir)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
