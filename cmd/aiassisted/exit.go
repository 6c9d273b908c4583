package aiassisted

import (
	"fmt"
	"io"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/ui/styles"
)

// Exit codes
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

// ReportError prints err for the user and returns the process exit code.
// colored selects styled output.
func ReportError(w io.Writer, err error, colored bool) int {
	if err == nil {
		return ExitOK
	}

	if errors.IsCancelled(err) {
		_, _ = fmt.Fprintln(w, MsgErrCancelled)
		return ExitCancelled
	}

	line := fmt.Sprintf("Error: %v", err)
	if colored {
		line = styles.Render("Error", line)
	}
	_, _ = fmt.Fprintln(w, line)
	return ExitError
}
