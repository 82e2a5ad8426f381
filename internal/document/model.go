package document

import (
	"math"

	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/typeid"
)

type ShapeKind string

const (
	KindRectangle ShapeKind = "rectangle"
	KindCircle    ShapeKind = "circle"
)

// Shape is a rectangle or circle on the canvas. Center is canvas-local; Width and
// Height are full extents. Circles always carry Width == Height == diameter.
type Shape struct {
	ID     string        `json:"id"`
	Kind   ShapeKind     `json:"kind"`
	Center geometry.Vec2 `json:"center"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`

	// Children are sub-element visuals (edge strips, handles) in shape-local
	// space. They count for hit testing.
	Children []geometry.Rect `json:"children,omitempty"`
}

// NewShape creates a zero-size shape anchored at center.
func NewShape(kind ShapeKind, center geometry.Vec2) Shape {
	return Shape{
		ID:     typeid.NewShapeID(),
		Kind:   kind,
		Center: center,
	}
}

// Bounds returns the axis-aligned bounding rect in canvas-local space.
func (s Shape) Bounds() geometry.Rect {
	return geometry.Rect{Center: s.Center, Width: s.Width, Height: s.Height}
}

// Local converts a canvas-local point into this shape's local space.
func (s Shape) Local(p geometry.Vec2) geometry.Vec2 {
	return p.Sub(s.Center)
}

// Magnitude is the length of the size vector, used for the minimum-draw check.
func (s Shape) Magnitude() float64 {
	return math.Hypot(s.Width, s.Height)
}

// HalfExtents returns half of the shape size.
func (s Shape) HalfExtents() geometry.Vec2 {
	return geometry.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// Contains hit-tests a canvas-local point against the shape and its children.
func (s Shape) Contains(p geometry.Vec2) bool {
	switch s.Kind {
	case KindCircle:
		if geometry.CircleContains(s.Center, s.Width, p) {
			return true
		}
	default:
		if s.Bounds().Contains(p) {
			return true
		}
	}

	local := s.Local(p)
	for _, child := range s.Children {
		if child.Contains(local) {
			return true
		}
	}
	return false
}

// WithSize returns a copy with the given size. Circles take a single diameter.
func (s Shape) WithSize(width, height float64) Shape {
	if s.Kind == KindCircle {
		height = width
	}
	s.Width = width
	s.Height = height
	return s
}

// Sketch is a JSON snapshot of the registry.
type Sketch struct {
	Rectangle *Shape `json:"rectangle"`
	Circle    *Shape `json:"circle"`
}
