package manifest

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

const (
	h1 = "1111111111111111111111111111111111111111111111111111111111111111"
	h2 = "2222222222222222222222222222222222222222222222222222222222222222"
	h3 = "3333333333333333333333333333333333333333333333333333333333333333"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Entry
	}{
		{
			name: "simple entries",
			text: "a.txt:" + h1 + "\nb/c.md:" + h2 + "\n",
			want: []Entry{{"a.txt", h1}, {"b/c.md", h2}},
		},
		{
			name: "blank lines comments and whitespace",
			text: "# header\n\n   a.txt:" + h1 + "   \n\t# indented comment\n",
			want: []Entry{{"a.txt", h1}},
		},
		{
			name: "no trailing newline and crlf",
			text: "a.txt:" + h1 + "\r\nb.txt:" + h2,
			want: []Entry{{"a.txt", h1}, {"b.txt", h2}},
		},
		{
			name: "malformed lines are skipped individually",
			text: "no separator here\n:" + h1 + "\nempty-digest:\n/abs/path:" + h2 + "\n../escape:" + h2 + "\nx/../../y:" + h2 + "\nok.txt:" + h3,
			want: []Entry{{"ok.txt", h3}},
		},
		{
			name: "split on first colon only",
			text: "odd.txt:abc:def",
			want: []Entry{{"odd.txt", "abc:def"}},
		},
		{
			name: "digest is lowercased",
			text: "a.txt:ABCDEF",
			want: []Entry{{"a.txt", "abcdef"}},
		},
		{
			name: "duplicate keeps first position and last digest",
			text: "a.txt:" + h1 + "\nb.txt:" + h2 + "\na.txt:" + h3,
			want: []Entry{{"a.txt", h3}, {"b.txt", h2}},
		},
		{
			name: "empty text",
			text: "",
			want: []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Parse(tt.text)
			assert.Equal(t, tt.want, m.Entries())
		})
	}
}

func TestValidPath(t *testing.T) {
	valid := []string{"a.txt", "dir/file.md", ".hidden/x", "a/./b"}
	invalid := []string{"", "/etc/passwd", "..", "../x", "a/../../b", ".", "a\\b"}

	for _, p := range valid {
		assert.True(t, ValidPath(p), p)
	}
	for _, p := range invalid {
		assert.False(t, ValidPath(p), p)
	}
}

func randomManifest(r *rand.Rand, n int) *Manifest {
	m := New()
	for i := 0; i < n; i++ {
		depth := r.Intn(3)
		parts := make([]string, 0, depth+1)
		for d := 0; d < depth; d++ {
			parts = append(parts, fmt.Sprintf("dir%d", r.Intn(3)))
		}
		parts = append(parts, fmt.Sprintf("file%d.md", r.Intn(20)))
		buf := make([]byte, 16)
		r.Read(buf)
		m.Set(strings.Join(parts, "/"), HashBytes(buf))
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		m := randomManifest(r, r.Intn(30))

		parsed := Parse(m.String())
		assert.True(t, m.Equal(parsed), "round trip changed manifest:\n%s", m.String())
		assert.Equal(t, m.Paths(), parsed.Paths(), "order must survive a round trip")
	}
}

func TestWriteTo(t *testing.T) {
	m := FromEntries(Entry{"a.txt", h1}, Entry{"b.txt", h2})

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "a.txt:"+h1+"\nb.txt:"+h2+"\n", buf.String())
}

func TestLoad(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/tree", 0755))
	require.NoError(t, fsys.WriteFile("/tree/FILES.txt", []byte("a.txt:"+h1+"\n"), 0644))

	m, err := Load(fsys, "/tree/FILES.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, m.Paths())

	_, err = Load(fsys, "/tree/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = Load(fsys, "/tree")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}
