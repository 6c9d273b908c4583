package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rstlix0x0/aiassisted/pkg/installer"
	"github.com/rstlix0x0/aiassisted/pkg/ui"
)

func TestFormatPreview(t *testing.T) {
	p := &installer.Preview{
		Files: []installer.FileDiff{
			{Path: "a.md"},
			{Path: "b.md", New: true},
			{Path: "logo.png", Binary: true},
		},
		Lines: []string{
			"--- a/a.md",
			"+++ b/a.md",
			"@@ -1 +1 @@",
			"-old",
			"+new",
		},
		Omitted: 7,
	}

	got := ui.FormatPreview(p, nil)
	assert.Equal(t, "Changes to apply:\n"+
		"  modified a.md\n"+
		"  new      b.md\n"+
		"  binary   logo.png\n"+
		"\n"+
		"--- a/a.md\n+++ b/a.md\n@@ -1 +1 @@\n-old\n+new\n"+
		"... (7 more lines)\n", got)
}

func TestFormatPreviewStylesDiffLines(t *testing.T) {
	p := &installer.Preview{Lines: []string{"--- a/x", "@@ -1 +1 @@", "-a", "+b", " ctx"}}
	tag := func(name, s string) string { return "<" + name + ">" + s }

	got := ui.FormatPreview(p, tag)
	assert.Contains(t, got, "<DiffHeader>--- a/x\n")
	assert.Contains(t, got, "<DiffHunk>@@ -1 +1 @@\n")
	assert.Contains(t, got, "<DiffRemove>-a\n")
	assert.Contains(t, got, "<DiffAdd>+b\n")
	assert.Contains(t, got, "\n ctx\n")
}

func TestFormatPreviewMetadataOnly(t *testing.T) {
	p := &installer.Preview{MetadataOnly: true, Files: []installer.FileDiff{{Path: ".version"}}}
	assert.Contains(t, ui.FormatPreview(p, nil), "Only the version marker changes.")
}

func TestFormatPreviewNil(t *testing.T) {
	assert.Equal(t, "No preview available.\n", ui.FormatPreview(nil, nil))
}

func TestConsolePreviewIgnoresQuiet(t *testing.T) {
	var out bytes.Buffer
	c := ui.NewConsole(&out, &bytes.Buffer{}, ui.FormatText, true)
	c.Preview(&installer.Preview{Lines: []string{"+x"}})
	assert.Contains(t, out.String(), "+x")
}
