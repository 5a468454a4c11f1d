package recital

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/recital/internal/logging"
	"github.com/aretw0/recital/pkg/adapters/console"
	"github.com/aretw0/recital/pkg/domain"
	"github.com/aretw0/recital/pkg/program"
)

// Runner executes an ordered list of actions against a Sink and then blocks
// until one unit of input is available.
type Runner struct {
	// Actions run in slice order. Defaults to program.Sequence().
	Actions []domain.Action

	// Sink receives every emitted line. Defaults to stdout.
	Sink domain.Sink

	// Input is read exactly once after the last action. Defaults to stdin.
	Input io.Reader

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// OnStatus, if set, observes every status transition.
	OnStatus func(domain.Status)

	status domain.Status
}

// NewRunner creates a Runner for the program sequence over Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Actions: program.Sequence(),
		Sink:    console.NewSink(os.Stdout),
		Input:   os.Stdin,
		Logger:  logging.NewNop(),
		status:  domain.StatusIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status reports the current lifecycle phase.
func (r *Runner) Status() domain.Status {
	return r.status
}

// Run executes every action in order, then waits for one unit of input.
// The wait has no timeout; ctx is only used to correlate log records.
func (r *Runner) Run(ctx context.Context) error {
	if r.Sink == nil {
		return fmt.Errorf("sink must be set")
	}
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	r.transition(ctx, logger, domain.StatusRunning)
	for i, act := range r.Actions {
		logger.DebugContext(ctx, "action started", "index", i, "name", act.Name, "kind", act.Kind)
		if err := act.Run(r.Sink); err != nil {
			return fmt.Errorf("action %s: %w", act.Name, err)
		}
	}

	r.transition(ctx, logger, domain.StatusAwaitingInput)
	if err := awaitInput(r.Input); err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	r.transition(ctx, logger, domain.StatusTerminated)
	return nil
}

func (r *Runner) transition(ctx context.Context, logger *slog.Logger, next domain.Status) {
	logger.DebugContext(ctx, "runner status changed", "from", r.status, "to", next)
	r.status = next
	if r.OnStatus != nil {
		r.OnStatus(next)
	}
}

// awaitInput consumes a single byte. Its value is discarded and end of
// stream counts as input.
func awaitInput(in io.Reader) error {
	var buf [1]byte
	if _, err := io.ReadFull(in, buf[:]); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
