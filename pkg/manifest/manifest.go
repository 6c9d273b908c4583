package manifest

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

// Entry is one manifest line
type Entry struct {
	Path   string
	Digest string
}

// Manifest maps relative POSIX paths to digests, remembering the order in
// which paths were first seen.
type Manifest struct {
	order   []string
	digests map[string]string
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{digests: make(map[string]string)}
}

// FromEntries builds a manifest from entries, in order
func FromEntries(entries ...Entry) *Manifest {
	m := New()
	for _, e := range entries {
		m.Set(e.Path, e.Digest)
	}
	return m
}

// Set records digest for p. A path already present keeps its position.
func (m *Manifest) Set(p, digest string) {
	if _, ok := m.digests[p]; !ok {
		m.order = append(m.order, p)
	}
	m.digests[p] = normalizeDigest(digest)
}

// Get returns the digest recorded for p
func (m *Manifest) Get(p string) (string, bool) {
	d, ok := m.digests[p]
	return d, ok
}

// Has reports whether p is listed
func (m *Manifest) Has(p string) bool {
	_, ok := m.digests[p]
	return ok
}

// Len returns the number of entries
func (m *Manifest) Len() int {
	return len(m.order)
}

// Paths returns the listed paths in manifest order
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Entries returns the entries in manifest order
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, Entry{Path: p, Digest: m.digests[p]})
	}
	return out
}

// Equal reports whether both manifests hold the same path to digest mapping.
// Order is not significant.
func (m *Manifest) Equal(other *Manifest) bool {
	if m.Len() != other.Len() {
		return false
	}
	for p, d := range m.digests {
		if od, ok := other.digests[p]; !ok || od != d {
			return false
		}
	}
	return true
}

// ValidPath reports whether p is a usable relative path: non-empty, not
// absolute and free of ".." segments.
func ValidPath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return false
		}
	}
	return path.Clean(p) != "."
}

// Parse reads manifest text. Blank lines and lines starting with # are
// ignored. Each remaining line is split on its first colon into path and
// digest; lines without a colon, with an empty side, or with an unsafe path
// are skipped.
func Parse(text string) *Manifest {
	m := New()
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, digest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		p = strings.TrimSpace(p)
		digest = strings.TrimSpace(digest)
		if digest == "" || !ValidPath(p) {
			continue
		}
		m.Set(p, digest)
	}
	return m
}

// Load reads and parses the manifest file at filePath. A missing file is
// reported with the NOT_FOUND code; any other read failure is a PARSE error.
func Load(fsys filesystem.FS, filePath string) (*Manifest, error) {
	data, err := fsys.ReadFile(filePath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "manifest %s does not exist", filePath).
				WithDetail("path", filePath)
		}
		return nil, errors.Wrapf(err, errors.ErrParse, "failed to read manifest %s", filePath).
			WithDetail("path", filePath)
	}
	return Parse(string(data)), nil
}

// String serializes the manifest as path:digest lines in manifest order
func (m *Manifest) String() string {
	var b strings.Builder
	for _, p := range m.order {
		b.WriteString(p)
		b.WriteByte(':')
		b.WriteString(m.digests[p])
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the serialized manifest to w
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
