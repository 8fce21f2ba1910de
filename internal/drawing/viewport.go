package drawing

import (
	"math"
)

// Zoom bounds.
const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// ScreenPoint is a position in viewport pixels.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the pan and zoom transform applied to the map:
// screen = map*Scale + Offset.
type Viewport struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// NewViewport returns the identity transform.
func NewViewport() *Viewport {
	return &Viewport{Scale: 1}
}

// Pan translates the view.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt multiplies the scale by factor, clamped to [MinZoom, MaxZoom],
// keeping the map point under cursor where it is on screen.
func (v *Viewport) ZoomAt(cursor ScreenPoint, factor float64) {
	if factor <= 0 {
		return
	}
	next := math.Max(MinZoom, math.Min(MaxZoom, v.Scale*factor))

	anchor := v.ToMap(cursor)
	v.Scale = next
	v.OffsetX = cursor.X - anchor.X*next
	v.OffsetY = cursor.Y - anchor.Y*next
}

// ToMap converts a screen position to unscaled map pixels.
func (v *Viewport) ToMap(p ScreenPoint) ScreenPoint {
	return ScreenPoint{
		X: (p.X - v.OffsetX) / v.Scale,
		Y: (p.Y - v.OffsetY) / v.Scale,
	}
}

// ToScreen converts unscaled map pixels to a screen position.
func (v *Viewport) ToScreen(p ScreenPoint) ScreenPoint {
	return ScreenPoint{
		X: p.X*v.Scale + v.OffsetX,
		Y: p.Y*v.Scale + v.OffsetY,
	}
}

// Reset returns to the identity transform.
func (v *Viewport) Reset() {
	*v = Viewport{Scale: 1}
}
