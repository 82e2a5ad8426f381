package pointer

import "github.com/go-gl/mathgl/mgl64"

// RaySource is a controller-style pointer: a world-space ray plus a trigger.
type RaySource struct {
	canvas *Canvas

	button  Button
	origin  mgl64.Vec3
	dir     mgl64.Vec3
	trigger bool
}

// NewRaySource creates a ray source aimed at canvas.
func NewRaySource(canvas *Canvas) *RaySource {
	return &RaySource{canvas: canvas}
}

// Feed records the controller pose and trigger level.
func (r *RaySource) Feed(origin, dir mgl64.Vec3, trigger bool) {
	r.origin, r.dir, r.trigger = origin, dir, trigger
}

// Poll implements Source.
func (r *RaySource) Poll() Sample {
	p, ok := r.canvas.Intersect(r.origin, r.dir)
	return sample(&r.button, r.trigger, p, ok)
}
