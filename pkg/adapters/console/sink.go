package console

import (
	"fmt"
	"io"
	"os"
)

// Sink writes newline-terminated lines to an io.Writer.
type Sink struct {
	w io.Writer
}

// NewSink creates a Sink over w. A nil writer defaults to os.Stdout.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return &Sink{w: w}
}

// WriteLine writes line followed by a newline.
func (s *Sink) WriteLine(line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("console write: %w", err)
	}
	return nil
}
