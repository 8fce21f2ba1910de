package drawing

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// MinExtent is the smallest committed extent, in percent of the map. Smaller
// gestures are treated as accidental clicks.
const MinExtent = 1.0

// Confirmation prompt shown before a shape is committed.
const (
	ConfirmTitle  = "Confirm Action"
	ConfirmDetail = "This shape is permanent and will be shown to all players."
)

// DefaultColor is used when a gesture does not pick one.
const DefaultColor = "#ff4d4f"

// Pending is a released shape waiting for confirmation.
type Pending struct {
	Shape       *entities.Shape `json:"shape"`
	Description string          `json:"description"`
	Title       string          `json:"title"`
	Detail      string          `json:"detail"`
}

// Sketch is the gesture state for one board. At most one shape is being
// drawn or waiting for confirmation.
type Sketch struct {
	drawing *entities.Shape
	pending *Pending
}

// NewSketch returns an idle sketch.
func NewSketch() *Sketch {
	return &Sketch{}
}

// Drawing returns the shape under the cursor, or nil.
func (s *Sketch) Drawing() *entities.Shape {
	return s.drawing
}

// Pending returns the shape awaiting confirmation, or nil.
func (s *Sketch) Pending() *Pending {
	return s.pending
}

// Press seeds a zero extent shape at the click point.
func (s *Sketch) Press(tool Tool, at geometry.Point, color string) error {
	kind, ok := tool.ShapeKind()
	if !ok {
		return errors.InvalidArgumentf("%s is not a measurement tool", tool)
	}
	if s.pending != nil {
		return errors.FailedPrecondition("confirm or cancel the pending shape first")
	}
	if color == "" {
		color = DefaultColor
	}

	at = geometry.Clamp(at)
	s.drawing = &entities.Shape{
		Kind:   kind,
		Color:  color,
		Origin: at,
		End:    at,
	}
	return nil
}

// Drag updates the live extent and returns the measurement to display.
func (s *Sketch) Drag(to geometry.Point, dims geometry.Dimensions) (string, error) {
	if s.drawing == nil {
		return "", errors.FailedPrecondition("no shape is being drawn")
	}

	to = geometry.Clamp(to)
	if s.drawing.Kind == entities.ShapeCircle {
		s.drawing.Radius = geometry.Extent(s.drawing.Origin, to)
	} else {
		s.drawing.End = to
	}
	return Measure(s.drawing, dims), nil
}

// Release ends the gesture. Shapes below MinExtent are discarded and nil is
// returned; otherwise the shape is staged for confirmation.
func (s *Sketch) Release(dims geometry.Dimensions) (*Pending, error) {
	if s.drawing == nil {
		return nil, errors.FailedPrecondition("no shape is being drawn")
	}

	shape := s.drawing
	s.drawing = nil
	if extent(shape) < MinExtent {
		return nil, nil
	}

	shape.Description = Measure(shape, dims)
	s.pending = &Pending{
		Shape:       shape,
		Description: shape.Description,
		Title:       ConfirmTitle,
		Detail:      ConfirmDetail,
	}
	return s.pending, nil
}

// Confirm hands over the staged shape, stamped with id, for the caller to
// append to the scene.
func (s *Sketch) Confirm(id string) (*entities.Shape, error) {
	if s.pending == nil {
		return nil, errors.FailedPrecondition("no shape is waiting for confirmation")
	}
	shape := s.pending.Shape
	shape.ID = id
	s.pending = nil
	return shape, nil
}

// Restage puts a confirmed shape back into the confirmation gate. Used when
// committing it failed.
func (s *Sketch) Restage(shape *entities.Shape) {
	shape.ID = ""
	s.pending = &Pending{
		Shape:       shape,
		Description: shape.Description,
		Title:       ConfirmTitle,
		Detail:      ConfirmDetail,
	}
}

// Cancel discards both the live and the staged shape.
func (s *Sketch) Cancel() bool {
	had := s.drawing != nil || s.pending != nil
	s.drawing = nil
	s.pending = nil
	return had
}

// Measure renders a shape's size in feet.
func Measure(shape *entities.Shape, dims geometry.Dimensions) string {
	if shape.Kind == entities.ShapeCircle {
		return fmt.Sprintf("Diameter: %s", geometry.FormatFeet(geometry.CircleDiameterFeet(shape.Radius, dims)))
	}
	return fmt.Sprintf("Length: %s", geometry.FormatFeet(geometry.SegmentLengthFeet(shape.Origin, shape.End, dims)))
}

func extent(shape *entities.Shape) float64 {
	if shape.Kind == entities.ShapeCircle {
		return math.Abs(shape.Radius)
	}
	return geometry.Extent(shape.Origin, shape.End)
}
