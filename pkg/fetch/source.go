package fetch

import (
	"net/url"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Remote resource names relative to the base URL
const (
	VersionPath  = ".version"
	ManifestPath = "FILES.txt"
)

// DefaultBaseURL is the upstream tree
const DefaultBaseURL = "https://raw.githubusercontent.com/rstlix0x0/aiassisted/main/.aiassisted"

// Source maps remote tree paths to absolute URLs.
type Source struct {
	base string
}

// NewSource validates base and returns a Source rooted at it.
func NewSource(base string) (*Source, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, errors.New(errors.ErrInvalidInput, "source URL must not be empty")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid source URL %q", base).
			WithDetail("url", base)
	}
	return &Source{base: base}, nil
}

// BaseURL returns the normalized base URL
func (s *Source) BaseURL() string {
	return s.base
}

// VersionURL is the URL of the version marker
func (s *Source) VersionURL() string {
	return s.FileURL(VersionPath)
}

// ManifestURL is the URL of FILES.txt
func (s *Source) ManifestURL() string {
	return s.FileURL(ManifestPath)
}

// FileURL returns the URL of a manifest-relative path. Each segment is
// escaped on its own so separators survive.
func (s *Source) FileURL(relPath string) string {
	segments := strings.Split(strings.TrimPrefix(relPath, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.base + "/" + strings.Join(segments, "/")
}
