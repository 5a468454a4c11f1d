package memory

import (
	"errors"
	"sync"
)

// ErrSinkClosed is returned by WriteLine after Close.
var ErrSinkClosed = errors.New("sink closed")

// Sink records lines in memory. It is used to capture what an action emits
// without touching a real stream.
type Sink struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// WriteLine appends line to the recording.
func (s *Sink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	s.lines = append(s.lines, line)
	return nil
}

// Lines returns a copy of the recorded lines in write order.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Close makes subsequent writes fail, simulating an unwritable stream.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
