package spatial

import (
	"fmt"
	"math"
)

// Point is a drawing coordinate in model units.
type Point struct {
	X, Y, Z float64
}

// PlanarDistance returns the distance between p and q in the XY plane.
// Z is ignored.
func (p Point) PlanarDistance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Distance returns the full 3D Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String formats the point the way log lines show it.
func (p Point) String() string {
	return fmt.Sprintf("X:%.2f, Y:%.2f", p.X, p.Y)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Point
	Max Point
}

// PointBounds returns the degenerate box around a single point.
func PointBounds(p Point) Bounds {
	return Bounds{Min: p, Max: p}
}

// Center returns the midpoint of the box on all three axes.
func (b Bounds) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Overlaps reports whether b and o overlap on all three axes.
// Touching faces count as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}
