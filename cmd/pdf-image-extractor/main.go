// Command pdf-image-extractor prints the text of every page of a PDF and
// saves its large, distinct raster images resized to 70% of their size.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

var version = "0.1.0"

const (
	exitFatal = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if domain.IsType(err, domain.ErrorTypeValidation) {
		return exitUsage
	}
	return exitFatal
}
