package pointer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

const parallelEpsilon = 1e-9

// Canvas is the drawing plane in world space. Canvas-local space is the plane's
// XY frame with the origin at its center; local Z is the plane normal.
type Canvas struct {
	transform mgl64.Mat4
	inverse   mgl64.Mat4

	// Surface optionally bounds input to a sub-rectangle of the canvas.
	surface    geometry.Rect
	hasSurface bool
}

// NewCanvas creates a canvas placed in the world by transform.
func NewCanvas(transform mgl64.Mat4) *Canvas {
	c := &Canvas{}
	c.SetTransform(transform)
	return c
}

// SetTransform moves the canvas.
func (c *Canvas) SetTransform(m mgl64.Mat4) {
	c.transform = m
	c.inverse = m.Inv()
}

// Transform returns the canvas-local to world transform.
func (c *Canvas) Transform() mgl64.Mat4 {
	return c.transform
}

// ClipTo restricts accepted intersections to r, in canvas-local units.
func (c *Canvas) ClipTo(r geometry.Rect) {
	c.surface = r
	c.hasSurface = true
}

// Unclip removes the drawing surface restriction.
func (c *Canvas) Unclip() {
	c.surface = geometry.Rect{}
	c.hasSurface = false
}

// Surface returns the drawing surface, if one is set.
func (c *Canvas) Surface() (geometry.Rect, bool) {
	return c.surface, c.hasSurface
}

// Intersect casts a world-space ray against the canvas plane and returns the
// canvas-local hit point. Rays parallel to the plane, pointing away from it,
// or landing outside the drawing surface report false.
func (c *Canvas) Intersect(origin, dir mgl64.Vec3) (geometry.Vec2, bool) {
	if c.transform.Det() == 0 {
		return geometry.Vec2{}, false
	}
	o := c.inverse.Mul4x1(origin.Vec4(1)).Vec3()
	d := c.inverse.Mul4x1(dir.Vec4(0)).Vec3()

	if math.Abs(d.Z()) < parallelEpsilon {
		return geometry.Vec2{}, false
	}
	t := -o.Z() / d.Z()
	if t < 0 {
		return geometry.Vec2{}, false
	}

	hit := o.Add(d.Mul(t))
	p := geometry.V(hit.X(), hit.Y())
	if c.hasSurface && !c.surface.Contains(p) {
		return geometry.Vec2{}, false
	}
	return p, true
}

// World maps a canvas-local point to world space.
func (c *Canvas) World(p geometry.Vec2) mgl64.Vec3 {
	return c.transform.Mul4x1(mgl64.Vec4{p.X, p.Y, 0, 1}).Vec3()
}
