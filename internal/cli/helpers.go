package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/recital/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to keep Stdout byte-exact).
func createLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return logging.NewNop()
	}
	if w != nil {
		return logging.NewWithWriter(w, slog.LevelDebug)
	}
	return logging.New(slog.LevelDebug)
}

// isInteractive reports whether r is a terminal, in which case the final
// wait completes on the first line the user enters.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
