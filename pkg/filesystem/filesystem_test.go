package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	rc, err := fsys.Open(testFile)
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, testContent, streamed)

	require.NoError(t, fsys.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	renamed := filepath.Join(tmpDir, "renamed.txt")
	require.NoError(t, fsys.Rename(testFile, renamed))
	assert.False(t, Exists(fsys, testFile))
	assert.True(t, Exists(fsys, renamed))

	require.NoError(t, fsys.Remove(renamed))
	require.NoError(t, fsys.RemoveAll(filepath.Join(tmpDir, "sub")))
	entries, err = fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMkdirTemp(t *testing.T) {
	for name, fsys := range map[string]FS{"os": NewOS(), "memory": NewMemory()} {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			if name == "memory" {
				require.NoError(t, fsys.MkdirAll(base, 0755))
			}

			dir, err := fsys.MkdirTemp(base, ".aiassisted-staging-")
			require.NoError(t, err)
			assert.Equal(t, base, filepath.Dir(dir))
			assert.Contains(t, filepath.Base(dir), ".aiassisted-staging-")
			assert.True(t, IsDir(fsys, dir))
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	for name, fsys := range map[string]FS{"os": NewOS(), "memory": NewMemory()} {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			target := filepath.Join(base, "nested", "dir", "file.md")

			require.NoError(t, WriteFileAtomic(fsys, target, []byte("first"), 0644))
			data, err := fsys.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, "first", string(data))

			require.NoError(t, WriteFileAtomic(fsys, target, []byte("second"), 0644))
			data, err = fsys.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, "second", string(data))

			// No temporary files are left behind
			entries, err := fsys.ReadDir(filepath.Dir(target))
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "file.md", entries[0].Name())
		})
	}
}

func TestWriteFileAtomicPermissions(t *testing.T) {
	fsys := NewOS()
	target := filepath.Join(t.TempDir(), "file.txt")

	require.NoError(t, WriteFileAtomic(fsys, target, []byte("x"), 0644))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestCopyFile(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("payload"), 0644))

	require.NoError(t, CopyFile(fsys, "/src/a.txt", "/dst/deep/a.txt", 0644))

	data, err := fsys.ReadFile("/dst/deep/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	err = CopyFile(fsys, "/src/missing.txt", "/dst/missing.txt", 0644)
	assert.Error(t, err)
	assert.False(t, Exists(fsys, "/dst/missing.txt"))
}

func TestAferoReadFileOnDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)

	_, err = fsys.Open("/dir")
	assert.Error(t, err)
}
