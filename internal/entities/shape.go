package entities

import (
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// ShapeKind is the variant of an area marker.
type ShapeKind string

const (
	ShapeCircle ShapeKind = "circle"
	ShapeCone   ShapeKind = "cone"
	ShapeLine   ShapeKind = "line"
)

// Shape is a committed area marker. Circles use Origin and Radius (percent
// of map width); cones and lines use Origin and End.
type Shape struct {
	ID          string         `json:"id"`
	Kind        ShapeKind      `json:"kind"`
	Color       string         `json:"color"`
	Origin      geometry.Point `json:"origin"`
	End         geometry.Point `json:"end,omitempty"`
	Radius      float64        `json:"radius,omitempty"`
	Description string         `json:"description,omitempty"`
}
