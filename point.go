package arcview

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Polar returns the point at radius r and angle deg (degrees) around p.
// Angle 0 lies along +X and grows toward +Y.
func (p Point) Polar(r, deg float64) Point {
	rad := Radians(deg)
	return Point{X: p.X + math.Cos(rad)*r, Y: p.Y + math.Sin(rad)*r}
}

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Point
}

// SquareAround returns the square of half-size r centered at c.
func SquareAround(c Point, r float64) Rect {
	return Rect{
		Min: Point{X: c.X - r, Y: c.Y - r},
		Max: Point{X: c.X + r, Y: c.Y + r},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Inset shrinks r by the given insets. A negative resulting extent
// collapses to zero at the inset origin.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		Min: Point{X: r.Min.X + in.Left, Y: r.Min.Y + in.Top},
		Max: Point{X: r.Max.X - in.Right, Y: r.Max.Y - in.Bottom},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Insets is padding around a content box.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// UniformInsets returns insets of v on every side.
func UniformInsets(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Length returns the distance between the segment end points.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}
