package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/rstlix0x0/aiassisted/pkg/ui/styles"
)

// Console prints command output. Success, Info, Header and plain lines go to
// out and are dropped in quiet mode; warnings and errors go to errOut and are
// always printed.
type Console struct {
	out    io.Writer
	errOut io.Writer
	format Format
	quiet  bool
}

// NewConsole creates a Console. FormatAuto is resolved against out.
func NewConsole(out, errOut io.Writer, format Format, quiet bool) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
		format: format.Resolve(out),
		quiet:  quiet,
	}
}

// Out is the writer for regular output
func (c *Console) Out() io.Writer {
	return c.out
}

// Colored reports whether output is styled
func (c *Console) Colored() bool {
	return c.format == FormatTerminal
}

// Quiet reports whether regular output is suppressed
func (c *Console) Quiet() bool {
	return c.quiet
}

// Style renders s with the named style, or returns it unchanged for plain output
func (c *Console) Style(name, s string) string {
	if !c.Colored() {
		return s
	}
	return styles.Render(name, s)
}

func (c *Console) Success(msg string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.prefixed(c.out, pterm.Success, "", msg, args...)
}

func (c *Console) Info(msg string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.prefixed(c.out, pterm.Info, "", msg, args...)
}

func (c *Console) Warning(msg string, args ...interface{}) {
	c.prefixed(c.errOut, pterm.Warning, "Warning: ", msg, args...)
}

func (c *Console) Error(msg string, args ...interface{}) {
	c.prefixed(c.errOut, pterm.Error, "Error: ", msg, args...)
}

// Header prints a section title
func (c *Console) Header(title string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.out, c.Style("Header", title))
}

// Field prints an indented "label: value" line
func (c *Console) Field(label, value string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintf(c.out, "  %s %s\n", c.Style("Muted", label+":"), value)
}

// List prints items one per line under an indented bullet
func (c *Console) List(style string, items []string) {
	if c.quiet {
		return
	}
	for _, item := range items {
		_, _ = fmt.Fprintf(c.out, "    - %s\n", c.Style(style, item))
	}
}

// Println prints a plain line
func (c *Console) Println(line string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.out, line)
}

func (c *Console) prefixed(w io.Writer, printer pterm.PrefixPrinter, plainPrefix, msg string, args ...interface{}) {
	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}
	if c.Colored() {
		printer.WithWriter(w).Println(text)
		return
	}
	_, _ = fmt.Fprintln(w, plainPrefix+strings.TrimRight(text, "\n"))
}
