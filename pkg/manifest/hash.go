package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

// chunkSize bounds memory use while hashing large files
const chunkSize = 32 * 1024

// DigestLength is the length of a hex encoded SHA-256 digest
const DigestLength = sha256.Size * 2

// ComputeHash returns the lowercase hex SHA-256 digest of the file at path.
func ComputeHash(fsys filesystem.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).
			WithDetail("path", path)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes returns the lowercase hex SHA-256 digest of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether the file at path exists and hashes to expected.
// The comparison ignores hex case. It never fails: unreadable files simply
// do not verify.
func Verify(fsys filesystem.FS, path, expected string) bool {
	actual, err := ComputeHash(fsys, path)
	if err != nil {
		return false
	}
	return actual == normalizeDigest(expected)
}

func normalizeDigest(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}
