package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/installer"
)

// Prompter asks y/N questions on a Console
type Prompter struct {
	console *Console
	in      *bufio.Reader
}

var _ installer.Confirmer = (*Prompter)(nil)

// NewPrompter reads answers from in
func NewPrompter(console *Console, in io.Reader) *Prompter {
	return &Prompter{console: console, in: bufio.NewReader(in)}
}

// Confirm shows the preview and asks whether to apply it
func (p *Prompter) Confirm(ctx context.Context, preview *installer.Preview) (bool, error) {
	p.console.Preview(preview)
	return p.Ask(ctx, "Apply these changes?")
}

type answer struct {
	line string
	err  error
}

// Ask prints question with a [y/N] suffix and waits for a line. Only "y" and
// "yes" accept; an empty line or end of input declines.
func (p *Prompter) Ask(ctx context.Context, question string) (bool, error) {
	_, _ = fmt.Fprintf(p.console.Out(), "%s [y/N]: ", p.console.Style("Prompt", question))

	// The read cannot be interrupted; on cancellation it is abandoned
	answers := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(p.console.Out())
		return false, errors.Cancelled(ctx)
	case a := <-answers:
		if a.err != nil && a.err != io.EOF {
			return false, errors.Wrap(a.err, errors.ErrIO, "failed to read user input")
		}
		if a.err == io.EOF {
			_, _ = fmt.Fprintln(p.console.Out())
		}
		reply := strings.ToLower(strings.TrimSpace(a.line))
		return reply == "y" || reply == "yes", nil
	}
}
