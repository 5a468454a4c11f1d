package domain

import "fmt"

// Sink is the destination actions write their lines to.
// Lines are observed in call order; a Sink is owned by exactly one writer.
type Sink interface {
	WriteLine(line string) error
}

// ActionKind classifies how an action produces its text.
type ActionKind string

const (
	// KindSingle emits one fixed line.
	KindSingle ActionKind = "single"
	// KindMulti emits a fixed sequence of lines.
	KindMulti ActionKind = "multi"
	// KindConditional emits one line chosen by a condition evaluated at call time.
	KindConditional ActionKind = "conditional"
	// KindNested emits a fixed line on behalf of a nested-namespace type.
	KindNested ActionKind = "nested"
)

// Action is one named step of the print sequence.
type Action struct {
	Name string
	Kind ActionKind
	Emit func(Sink) error
}

// Run executes the action against the sink.
func (a Action) Run(s Sink) error {
	if a.Emit == nil {
		return fmt.Errorf("action %q has no emitter", a.Name)
	}
	return a.Emit(s)
}
