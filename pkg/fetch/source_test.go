package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		wantBase string
		wantErr  bool
	}{
		{"plain", "https://example.com/tree", "https://example.com/tree", false},
		{"trailing slashes trimmed", "https://example.com/tree//", "https://example.com/tree", false},
		{"default", DefaultBaseURL, DefaultBaseURL, false},
		{"empty", "", "", true},
		{"no scheme", "example.com/tree", "", true},
		{"no host", "file:///tmp/tree", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSource(tt.base)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, s.BaseURL())
		})
	}
}

func TestSourceURLs(t *testing.T) {
	s, err := NewSource("https://example.com/repo/.aiassisted/")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/repo/.aiassisted/.version", s.VersionURL())
	assert.Equal(t, "https://example.com/repo/.aiassisted/FILES.txt", s.ManifestURL())
	assert.Equal(t, "https://example.com/repo/.aiassisted/x/y.txt", s.FileURL("x/y.txt"))
	assert.Equal(t, "https://example.com/repo/.aiassisted/x/y.txt", s.FileURL("/x/y.txt"))
	assert.Equal(t, "https://example.com/repo/.aiassisted/guides/my%20notes%3F.md", s.FileURL("guides/my notes?.md"))
}
