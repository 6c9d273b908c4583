package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rstlix0x0/aiassisted/cmd/aiassisted"
	"github.com/rstlix0x0/aiassisted/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := aiassisted.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	colored := ui.DetectFormat(os.Stderr) == ui.FormatTerminal
	os.Exit(aiassisted.ReportError(os.Stderr, err, colored))
}
