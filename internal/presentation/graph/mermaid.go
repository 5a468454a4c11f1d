package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/recital/pkg/domain"
)

// WaitNodeID is the terminal node every sequence flows into.
const WaitNodeID = "await_input"

// GraphOverlay contains run progress to visualize on the graph.
type GraphOverlay struct {
	CompletedActions []string
	CurrentAction    string
}

// GenerateMermaid produces a Mermaid flowchart of the action sequence.
// Node shape follows the action kind:
// - Single: [Rectangle]
// - Multi: [[Subroutine]]
// - Conditional: {Rhombus}
// - Nested: [(Cylinder)]
// The final wait is drawn as an input [/Parallelogram/].
func GenerateMermaid(actions []domain.Action, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	prev := ""
	for i, act := range actions {
		safeID := nodeID(i, act.Name)

		opener, closer := "[", "]"
		switch act.Kind {
		case domain.KindMulti:
			opener, closer = "[[", "]]"
		case domain.KindConditional:
			opener, closer = "{", "}"
		case domain.KindNested:
			opener, closer = "[(", ")]"
		}
		label := strings.ReplaceAll(act.Name, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		if prev != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, safeID))
		}
		prev = safeID
	}

	sb.WriteString(fmt.Sprintf("    %s[/\"wait for input\"/]\n", WaitNodeID))
	if prev != "" {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, WaitNodeID))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		index := make(map[string]string, len(actions))
		for i, act := range actions {
			if _, ok := index[act.Name]; !ok {
				index[act.Name] = nodeID(i, act.Name)
			}
		}
		index[WaitNodeID] = WaitNodeID

		visited := make(map[string]bool)
		for _, name := range overlay.CompletedActions {
			id, ok := index[name]
			if !ok || visited[id] {
				continue
			}
			visited[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
		}

		if id, ok := index[overlay.CurrentAction]; ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
		}
	}

	return sb.String()
}

// nodeID prefixes the position so repeated names stay distinct.
func nodeID(i int, name string) string {
	return fmt.Sprintf("a%d_%s", i, sanitizeMermaidID(name))
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
