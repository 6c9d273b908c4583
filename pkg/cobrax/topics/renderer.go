package topics

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns a topic's raw content into what the help command prints.
// format is the topic file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim, ending them with exactly one newline
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewPlainGlamourRenderer renders markdown without colors, for pipes and NO_COLOR
func NewPlainGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "notty"}
}

// Render converts markdown to terminal output. Anything that fails to render
// is returned unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
