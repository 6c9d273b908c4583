package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue string
		wantFound bool
	}{
		{"single line", "COMMIT_HASH=abc123", "abc123", true},
		{"among other keys", "VERSION=1.2\nCOMMIT_HASH=abc123\nDATE=2025-01-01\n", "abc123", true},
		{"surrounding whitespace", "  COMMIT_HASH=abc123  \r\n", "abc123", true},
		{"value kept verbatim", "COMMIT_HASH=a=b c", "a=b c", true},
		{"first match wins", "COMMIT_HASH=first\nCOMMIT_HASH=second", "first", true},
		{"empty value", "COMMIT_HASH=", "", true},
		{"missing key", "VERSION=1.2\n", "", false},
		{"prefix of another key", "COMMIT_HASH_OLD=zzz", "", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := Parse(tt.text, IdentityKey)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestReadFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/tree/.version", []byte("COMMIT_HASH=abc123\n"), 0644))

	value, found := ReadFile(fsys, "/tree/.version", IdentityKey)
	assert.True(t, found)
	assert.Equal(t, "abc123", value)

	value, found = ReadFile(fsys, "/tree/missing", IdentityKey)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name        string
		local       string
		localKnown  bool
		remote      string
		remoteKnown bool
		want        State
		needsUpdate bool
	}{
		{"equal identities", "abc123", true, "abc123", true, UpToDate, false},
		{"different identities", "old999", true, "abc123", true, Outdated, true},
		{"local missing", "", false, "abc123", true, Unknown, true},
		{"remote missing", "abc123", true, "", false, Unknown, true},
		{"both missing", "", false, "", false, Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.local, tt.localKnown, tt.remote, tt.remoteKnown)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.needsUpdate, got.NeedsUpdate())
		})
	}
}

func TestMissingLocalMarkerIsUnknown(t *testing.T) {
	fsys := filesystem.NewMemory()

	local, found := ReadFile(fsys, "/project/.aiassisted/.version", IdentityKey)
	remote, _ := Parse("COMMIT_HASH=abc123", IdentityKey)

	assert.Equal(t, "unknown", Display(local, found))
	assert.NotEqual(t, remote, Display(local, found))

	state := Compare(local, found, remote, true)
	assert.Equal(t, Unknown, state)
	assert.True(t, state.NeedsUpdate())
	assert.Equal(t, "unknown", state.String())
}

func TestStateZeroValueIsUnknown(t *testing.T) {
	var s State
	assert.Equal(t, Unknown, s)
	assert.True(t, s.NeedsUpdate())
	assert.Equal(t, "invalid", State(42).String())
}
