package ui

import (
	"fmt"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/installer"
)

// FormatPreview renders an update preview as text. Diff lines are colored
// through style when it is non-nil.
func FormatPreview(p *installer.Preview, style func(name, s string) string) string {
	if style == nil {
		style = func(_, s string) string { return s }
	}

	var b strings.Builder
	if p == nil {
		b.WriteString(style("Muted", "No preview available.") + "\n")
		return b.String()
	}

	b.WriteString(style("Header", "Changes to apply:") + "\n")
	if p.MetadataOnly {
		b.WriteString("  " + style("Muted", "Only the version marker changes.") + "\n")
	}
	for _, fd := range p.Files {
		kind := "modified"
		switch {
		case fd.New:
			kind = "new"
		case fd.Binary:
			kind = "binary"
		}
		fmt.Fprintf(&b, "  %-8s %s\n", kind, style("FilePath", fd.Path))
	}

	if len(p.Lines) > 0 {
		b.WriteString("\n")
	}
	for _, line := range p.Lines {
		b.WriteString(styleDiffLine(line, style) + "\n")
	}
	if p.Truncated() {
		fmt.Fprintf(&b, "%s\n", style("Muted", fmt.Sprintf("... (%d more lines)", p.Omitted)))
	}
	return b.String()
}

func styleDiffLine(line string, style func(name, s string) string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return style("DiffHeader", line)
	case strings.HasPrefix(line, "@@"):
		return style("DiffHunk", line)
	case strings.HasPrefix(line, "+"):
		return style("DiffAdd", line)
	case strings.HasPrefix(line, "-"):
		return style("DiffRemove", line)
	case strings.HasPrefix(line, "Binary files"):
		return style("Muted", line)
	default:
		return line
	}
}

// Preview prints p. It is shown even in quiet mode since it precedes a prompt.
func (c *Console) Preview(p *installer.Preview) {
	_, _ = fmt.Fprint(c.out, FormatPreview(p, c.Style))
}
