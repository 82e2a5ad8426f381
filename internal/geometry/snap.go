package geometry

import "math"

// Edge identifies one side of a rectangle.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

var edgeNames = [...]string{"none", "left", "right", "top", "bottom"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "none"
	}
	return edgeNames[e]
}

// ParseEdge is the inverse of Edge.String. Unknown names map to EdgeNone.
func ParseEdge(s string) Edge {
	for i, name := range edgeNames {
		if name == s {
			return Edge(i)
		}
	}
	return EdgeNone
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Edge) UnmarshalText(b []byte) error {
	*e = ParseEdge(string(b))
	return nil
}

// Horizontal reports whether the edge runs along the x axis (top or bottom).
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// SnapToGrid rounds each coordinate to the nearest multiple of step.
// A non-positive step returns p unchanged.
func SnapToGrid(p Vec2, step float64) Vec2 {
	if step <= 0 {
		return p
	}
	return Vec2{
		X: math.Round(p.X/step) * step,
		Y: math.Round(p.Y/step) * step,
	}
}

// ApplyAxisSnap zeroes each coordinate whose magnitude is within threshold.
// The booleans report which axis snapped, for highlight feedback.
func ApplyAxisSnap(p Vec2, threshold float64) (Vec2, bool, bool) {
	snapX := math.Abs(p.X) <= threshold
	snapY := math.Abs(p.Y) <= threshold
	if snapX {
		p.X = 0
	}
	if snapY {
		p.Y = 0
	}
	return p, snapX, snapY
}

// SnapToPoint returns ref when p is closer than distance to it, otherwise p.
func SnapToPoint(p, ref Vec2, distance float64) Vec2 {
	if p.Distance(ref) < distance {
		return ref
	}
	return p
}

// ClampToSurface clamps a shape center so the whole shape stays inside surface.
// When the shape is larger than the surface on an axis it is centered on that axis.
func ClampToSurface(halfExtents, center Vec2, surface Rect) Vec2 {
	lo := surface.Min().Add(halfExtents)
	hi := surface.Max().Sub(halfExtents)
	return Vec2{
		X: clampAxis(center.X, lo.X, hi.X, surface.Center.X),
		Y: clampAxis(center.Y, lo.Y, hi.Y, surface.Center.Y),
	}
}

func clampAxis(v, lo, hi, mid float64) float64 {
	if lo > hi {
		return mid
	}
	return math.Max(lo, math.Min(hi, v))
}

// ClassifyEdge returns the edge of rect that localPoint lies within thickness of.
// localPoint is relative to the rect center. Edges are checked left, right, top,
// bottom and the first match wins, so a point near a corner reports only one edge.
func ClassifyEdge(rect Rect, localPoint Vec2, thickness float64) Edge {
	half := rect.HalfExtents()
	switch {
	case math.Abs(localPoint.X+half.X) < thickness:
		return EdgeLeft
	case math.Abs(localPoint.X-half.X) < thickness:
		return EdgeRight
	case math.Abs(localPoint.Y-half.Y) < thickness:
		return EdgeTop
	case math.Abs(localPoint.Y+half.Y) < thickness:
		return EdgeBottom
	}
	return EdgeNone
}
