package geometry

import (
	"fmt"
	"math"
)

// FeetPerSquare is the grid convention every scene uses.
const FeetPerSquare = 5

// rangeEdgeFeet inflates a range ellipse so it is measured from the token's
// edge rather than its center.
const rangeEdgeFeet = 2.5

// Point is a normalized map position, 0..100 percent of width and height.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions is a scene's size in grid squares.
type Dimensions struct {
	WidthSquares  int `json:"width_squares"`
	HeightSquares int `json:"height_squares"`
}

// WidthFeet is the map width in feet.
func (d Dimensions) WidthFeet() float64 {
	return float64(d.WidthSquares * FeetPerSquare)
}

// HeightFeet is the map height in feet.
func (d Dimensions) HeightFeet() float64 {
	return float64(d.HeightSquares * FeetPerSquare)
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.WidthSquares > 0 && d.HeightSquares > 0
}

// DistanceFeet is the targeting distance between two tokens. Both deltas are
// scaled by the map width, which is how range has always been measured on the
// board; SegmentLengthFeet is the anisotropic variant used by shapes.
func DistanceFeet(from, to Point, dims Dimensions) float64 {
	return math.Hypot(to.X-from.X, to.Y-from.Y) * float64(dims.WidthSquares) / 100 * FeetPerSquare
}

// MovementFeet is how far a token travels between two points, in whole feet.
// It uses the targeting metric so a move and a range check agree.
func MovementFeet(from, to Point, dims Dimensions) int {
	return int(math.Round(DistanceFeet(from, to, dims)))
}

// InRange reports whether to is within info's reach of from.
func InRange(from, to Point, dims Dimensions, info RangeInfo) bool {
	return DistanceFeet(from, to, dims) <= float64(info.Feet)
}

// Ellipse is a range indicator in normalized coordinates.
type Ellipse struct {
	Center  Point   `json:"center"`
	RadiusX float64 `json:"radius_x"`
	RadiusY float64 `json:"radius_y"`
}

// RangeEllipse converts a range into the ellipse drawn around the caster.
// Non-square maps produce different horizontal and vertical radii.
func RangeEllipse(center Point, info RangeInfo, dims Dimensions) Ellipse {
	feet := float64(info.Feet) + rangeEdgeFeet
	e := Ellipse{Center: center}
	if w := dims.WidthFeet(); w > 0 {
		e.RadiusX = feet / w * 100
	}
	if h := dims.HeightFeet(); h > 0 {
		e.RadiusY = feet / h * 100
	}
	return e
}

// CircleDiameterFeet converts a circle radius (percent of width) to a diameter.
func CircleDiameterFeet(radius float64, dims Dimensions) float64 {
	return radius * dims.WidthFeet() * 2 / 100
}

// SegmentLengthFeet measures a cone or line, scaling each axis by its own side.
func SegmentLengthFeet(a, b Point, dims Dimensions) float64 {
	dx := (b.X - a.X) * dims.WidthFeet() / 100
	dy := (b.Y - a.Y) * dims.HeightFeet() / 100
	return math.Hypot(dx, dy)
}

// Extent is the raw percent distance between two points, used for the
// accidental click threshold.
func Extent(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// FormatFeet renders a measurement the way the board displays it.
func FormatFeet(feet float64) string {
	return fmt.Sprintf("%d ft", int(math.Round(feet)))
}

// Clamp keeps a point on the map.
func Clamp(p Point) Point {
	return Point{X: clamp(p.X, 0, 100), Y: clamp(p.Y, 0, 100)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
