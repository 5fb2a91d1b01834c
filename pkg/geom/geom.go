// pkg/geom/geom.go
package geom

import "math"

// Point is a plain 2D coordinate in map pixels.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	d := b.Sub(a)
	return math.Hypot(d.X, d.Y)
}

// Heading returns the angle of the vector from -> to, in radians.
func Heading(from, to Point) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Point {
	return Point{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Top, Right, Bottom, Left float64
}

// BoundsAt returns the box of size w x h with its top-left corner at p.
func BoundsAt(p Point, w, h float64) Bounds {
	return Bounds{Top: p.Y, Right: p.X + w, Bottom: p.Y + h, Left: p.X}
}

// CheckCollisionMovingBox reports whether box a, after moving by velocity,
// overlaps box b. Touching edges count as overlap.
func CheckCollisionMovingBox(a Bounds, velocity Point, b Bounds) bool {
	return a.Top+velocity.Y <= b.Bottom &&
		a.Right+velocity.X >= b.Left &&
		a.Bottom+velocity.Y >= b.Top &&
		a.Left+velocity.X <= b.Right
}

// CircleOverlap reports whether two circles strictly overlap.
func CircleOverlap(a Point, ra float64, b Point, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// PointInRect reports whether p lies inside the box (edges inclusive).
func PointInRect(p Point, b Bounds) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}
