package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/recital"
)

// RunOptions configures a single run of the program.
type RunOptions struct {
	Input  io.Reader
	Output io.Writer
	Debug  bool
	// LogOutput overrides the destination of debug logs (defaults to stderr).
	LogOutput io.Writer
}

// RunSession executes the program sequence once and waits for the final input.
func RunSession(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.Debug, opts.LogOutput)
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	logger.DebugContext(ctx, "starting recital", "version", recital.Version, "interactive", isInteractive(opts.Input))

	r := recital.NewRunner(
		recital.WithInput(opts.Input),
		recital.WithOutput(opts.Output),
		recital.WithLogger(logger),
	)
	if err := r.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "run failed", "error", err)
		return fmt.Errorf("recital: %w", err)
	}

	logger.DebugContext(ctx, "recital finished", "status", r.Status())
	return nil
}
