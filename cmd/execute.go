package cmd

import (
	"context"

	"github.com/samzong/gma-cli/internal/ui"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// Run executes root and maps the outcome to a process exit code.
func Run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	errOut := root.ErrOrStderr()
	if ctx.Err() != nil {
		ui.Warn(errOut, "\nOperation cancelled")
		return exitInterrupted
	}
	ui.Errorf(errOut, "%v", err)
	return exitFailure
}
