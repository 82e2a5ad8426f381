package geometry

import "math"

// Vec2 is a point or offset in canvas-local space (origin at the canvas center, y up).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V creates a new Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Rect is an axis-aligned rectangle given by its center and full size.
type Rect struct {
	Center Vec2    `json:"center"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromMinMax builds a Rect from two opposite corners.
func RectFromMinMax(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center: Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// HalfExtents returns half the width and height.
func (r Rect) HalfExtents() Vec2 {
	return Vec2{X: r.Width / 2, Y: r.Height / 2}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return r.Center.Sub(r.HalfExtents())
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return r.Center.Add(r.HalfExtents())
}

// Contains checks if a point is inside the rect (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// CircleContains reports whether p lies inside or on the circle of the given diameter.
func CircleContains(center Vec2, diameter float64, p Vec2) bool {
	radius := diameter / 2
	d := p.Sub(center)
	return d.X*d.X+d.Y*d.Y <= radius*radius
}
