package recital

import (
	"io"
	"log/slog"

	"github.com/aretw0/recital/pkg/adapters/console"
	"github.com/aretw0/recital/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the reader consumed by the final wait.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithOutput writes the emitted lines to w.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Sink = console.NewSink(w)
	}
}

// WithSink configures the line sink directly.
func WithSink(s domain.Sink) Option {
	return func(r *Runner) {
		r.Sink = s
	}
}

// WithActions replaces the default program sequence.
func WithActions(actions ...domain.Action) Option {
	return func(r *Runner) {
		r.Actions = actions
	}
}

// WithStatusHook registers a callback invoked on every status transition.
func WithStatusHook(hook func(domain.Status)) Option {
	return func(r *Runner) {
		r.OnStatus = hook
	}
}
