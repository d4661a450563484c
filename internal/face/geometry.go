package face

import "math"

// Proportions of the face, relative to Geometry.Radius unless noted.
const (
	faceScale = 0.8 // radius = faceScale * min(w, h)/2

	bezelWidth        = 0.1
	bezelShadowOffset = 0.07
	bezelShadowBlur   = 0.1

	dotCount    = 60
	dotRadius   = 0.01
	dotDistance = 0.9

	handShadowOffset = 0.03
	handShadowBlur   = 0.02

	// numeralScale is relative to min(w, h)/2, not to Radius.
	numeralScale = 0.6
)

// Point is a position in widget pixel space, y growing downwards.
type Point struct {
	X, Y float64
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Geometry is the center and radius of a face for one frame.
type Geometry struct {
	CX, CY float64
	Radius float64
}

// GeometryFor derives the geometry from the widget size. Call it every
// frame; it is never cached.
func GeometryFor(w, h float64) Geometry {
	cx, cy := w/2, h/2
	return Geometry{CX: cx, CY: cy, Radius: math.Min(cx, cy) * faceScale}
}

// Center returns the face center.
func (g Geometry) Center() Point {
	return Point{X: g.CX, Y: g.CY}
}

// HandPoint is the end of a hand segment of the given length pointing at
// deg degrees clockwise from 12 o'clock.
func HandPoint(g Geometry, deg, length float64) Point {
	theta := deg * math.Pi / 180
	return Point{
		X: g.CX + length*math.Sin(theta),
		Y: g.CY - length*math.Cos(theta),
	}
}

// DotAngle is the angle of tick dot i in radians, standard orientation
// (0 points right, growing clockwise on screen).
func DotAngle(i int) float64 {
	return math.Pi / 30 * float64(i)
}

// DotPoint is the center of tick dot i of 60.
func DotPoint(g Geometry, i int) Point {
	angle := DotAngle(i)
	d := g.Radius * dotDistance
	return Point{
		X: g.CX + math.Cos(angle)*d,
		Y: g.CY + math.Sin(angle)*d,
	}
}

// NumeralAngle is the angle of numeral i (1..12) in radians, same
// orientation as DotAngle: 3 sits at 0, 12 at -pi/2.
func NumeralAngle(i int) float64 {
	return math.Pi / 6 * float64(i-3)
}

// NumeralPoint is the visual center of numeral i on a w x h face.
func NumeralPoint(w, h float64, i int) Point {
	r := math.Min(w, h) / 2 * numeralScale
	angle := NumeralAngle(i)
	return Point{
		X: w/2 + math.Cos(angle)*r,
		Y: h/2 + math.Sin(angle)*r,
	}
}

// NumeralBaselineOffset moves a numeral's baseline below its center so the
// glyphs sit visually centered.
func NumeralBaselineOffset(size float64) float64 {
	return size / 3
}
