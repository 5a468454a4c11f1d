// Package manifest describes an action sequence as a YAML document.
package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/recital/pkg/adapters/memory"
	"github.com/aretw0/recital/pkg/domain"
)

// Entry is one action as listed in the manifest.
type Entry struct {
	Index int               `yaml:"index"`
	Name  string            `yaml:"name"`
	Kind  domain.ActionKind `yaml:"kind"`
	Lines []string          `yaml:"lines"`
}

// Manifest is the full listing of a sequence.
type Manifest struct {
	Actions []Entry `yaml:"actions"`
	Wait    string  `yaml:"wait"`
}

// Build records each action into its own in-memory sink to capture the lines it emits.
func Build(actions []domain.Action) (Manifest, error) {
	m := Manifest{
		Actions: make([]Entry, 0, len(actions)),
		Wait:    "one unit of input",
	}
	for i, act := range actions {
		sink := memory.NewSink()
		if err := act.Run(sink); err != nil {
			return Manifest{}, fmt.Errorf("record %s: %w", act.Name, err)
		}
		m.Actions = append(m.Actions, Entry{
			Index: i,
			Name:  act.Name,
			Kind:  act.Kind,
			Lines: sink.Lines(),
		})
	}
	return m, nil
}

// Write encodes the manifest of actions as YAML to w.
func Write(w io.Writer, actions []domain.Action) error {
	m, err := Build(actions)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}
