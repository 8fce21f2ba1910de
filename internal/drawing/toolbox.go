// Package drawing implements the measurement tools: tool selection, the
// press/drag/release gesture that sketches a shape, the confirmation gate in
// front of committing it, and the pan/zoom viewport.
package drawing

import (
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// Tool is the active pointer mode.
type Tool string

const (
	ToolPointer Tool = "pointer"
	ToolCircle  Tool = "circle"
	ToolCone    Tool = "cone"
	ToolLine    Tool = "line"
)

// ShapeKind returns the shape a measurement tool draws.
func (t Tool) ShapeKind() (entities.ShapeKind, bool) {
	switch t {
	case ToolCircle:
		return entities.ShapeCircle, true
	case ToolCone:
		return entities.ShapeCone, true
	case ToolLine:
		return entities.ShapeLine, true
	}
	return "", false
}

// Toolbox tracks the active tool and the last measurement tool used.
type Toolbox struct {
	active   Tool
	lastUsed Tool
}

// NewToolbox starts on the pointer with circle as the quick toggle target.
func NewToolbox() *Toolbox {
	return &Toolbox{active: ToolPointer, lastUsed: ToolCircle}
}

// Active returns the active tool.
func (t *Toolbox) Active() Tool {
	return t.active
}

// LastUsed returns the measurement tool Toggle switches to.
func (t *Toolbox) LastUsed() Tool {
	return t.lastUsed
}

// Select activates a tool.
func (t *Toolbox) Select(tool Tool) error {
	if tool == ToolPointer {
		t.active = tool
		return nil
	}
	if _, ok := tool.ShapeKind(); !ok {
		return errors.InvalidArgumentf("unknown tool %q", tool)
	}
	t.active = tool
	t.lastUsed = tool
	return nil
}

// Toggle flips between the pointer and the last measurement tool.
func (t *Toolbox) Toggle() Tool {
	if t.active == ToolPointer {
		t.active = t.lastUsed
	} else {
		t.active = ToolPointer
	}
	return t.active
}
