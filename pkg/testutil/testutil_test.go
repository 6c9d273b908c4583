package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRemoteTree(t *testing.T) {
	remote := NewRemoteTree(t, "abc").
		AddFile("a.txt", "alpha\n").
		AddFile("dir/b.txt", "beta\n")

	status, body := get(t, remote.URL()+"/.version")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "COMMIT_HASH=abc\n", body)

	_, body = get(t, remote.URL()+"/FILES.txt")
	assert.Equal(t, remote.ManifestText(), body)
	assert.Equal(t, []string{
		"# generated for tests",
		"a.txt:" + GetTestChecksum("alpha\n"),
		"dir/b.txt:" + GetTestChecksum("beta\n"),
	}, strings.Split(strings.TrimSpace(body), "\n"))

	_, body = get(t, remote.URL()+"/dir/b.txt")
	assert.Equal(t, "beta\n", body)
	assert.Equal(t, []string{"dir/b.txt"}, remote.FileRequests())

	t.Run("corrupt keeps the manifest digest", func(t *testing.T) {
		remote.Corrupt("a.txt", "tampered\n")
		_, body := get(t, remote.URL()+"/a.txt")
		assert.Equal(t, "tampered\n", body)
		assert.Equal(t, GetTestChecksum("alpha\n"), remote.Digest("a.txt"))
	})

	t.Run("fail and recover", func(t *testing.T) {
		remote.FailWith(".version", http.StatusServiceUnavailable)
		status, _ := get(t, remote.URL()+"/.version")
		assert.Equal(t, http.StatusServiceUnavailable, status)

		remote.Recover(".version")
		status, _ = get(t, remote.URL()+"/.version")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("removed file is gone", func(t *testing.T) {
		remote.RemoveFile("dir/b.txt")
		status, _ := get(t, remote.URL()+"/dir/b.txt")
		assert.Equal(t, http.StatusNotFound, status)
		assert.NotContains(t, remote.ManifestText(), "dir/b.txt")
	})

	remote.ResetRequests()
	assert.Empty(t, remote.Requests())
}

func TestChecksum(t *testing.T) {
	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", GetTestChecksum("hello"))
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "x/y.txt", "content")
	assert.True(t, FileExists(t, path))
	assert.False(t, DirExists(t, path))
	assert.True(t, DirExists(t, CreateDir(t, dir, "empty")))
	assert.Equal(t, "content", ReadFile(t, path))
	assert.Equal(t, map[string]string{"x/y.txt": "content"}, SnapshotTree(t, dir))
	assert.Equal(t, []string{"empty", "x"}, ListDir(t, dir))
}
