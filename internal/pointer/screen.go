package pointer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

// Viewport maps screen pixels onto the canvas with an orthographic projection.
// Screen Y grows downward, canvas Y grows upward.
type Viewport struct {
	CenterX       float64 `json:"centerX"`
	CenterY       float64 `json:"centerY"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// ToCanvas converts a screen position to canvas-local units.
func (v Viewport) ToCanvas(x, y float64) (geometry.Vec2, bool) {
	if v.PixelsPerUnit <= 0 {
		return geometry.Vec2{}, false
	}
	return geometry.V((x-v.CenterX)/v.PixelsPerUnit, (v.CenterY-y)/v.PixelsPerUnit), true
}

// Camera describes a perspective view for unprojecting screen positions.
type Camera struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Width      int
	Height     int
}

// Ray returns the world-space ray under the screen position (x, y).
func (c Camera) Ray(x, y float64) (origin, dir mgl64.Vec3, ok bool) {
	// UnProject expects window Y from the bottom.
	wy := float64(c.Height) - y
	near, err := mgl64.UnProject(mgl64.Vec3{x, wy, 0}, c.View, c.Projection, 0, 0, c.Width, c.Height)
	if err != nil {
		return origin, dir, false
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, wy, 1}, c.View, c.Projection, 0, 0, c.Width, c.Height)
	if err != nil {
		return origin, dir, false
	}
	d := far.Sub(near)
	if d.Len() == 0 {
		return origin, dir, false
	}
	return near, d.Normalize(), true
}

// ScreenSource is a mouse-style pointer. It uses the camera and canvas when both
// are set, otherwise the orthographic viewport.
type ScreenSource struct {
	viewport Viewport
	camera   *Camera
	canvas   *Canvas

	button Button
	x, y   float64
	down   bool
}

// NewScreenSource creates a screen source with an orthographic viewport.
func NewScreenSource(v Viewport) *ScreenSource {
	return &ScreenSource{viewport: v}
}

// SetViewport replaces the orthographic mapping.
func (s *ScreenSource) SetViewport(v Viewport) {
	s.viewport = v
}

// UseCamera switches to perspective mode against canvas.
func (s *ScreenSource) UseCamera(cam Camera, canvas *Canvas) {
	s.camera = &cam
	s.canvas = canvas
}

// Feed records the latest cursor position and button level.
func (s *ScreenSource) Feed(x, y float64, down bool) {
	s.x, s.y, s.down = x, y, down
}

// Poll implements Source.
func (s *ScreenSource) Poll() Sample {
	p, ok := s.locate()
	return sample(&s.button, s.down, p, ok)
}

func (s *ScreenSource) locate() (geometry.Vec2, bool) {
	if s.camera != nil && s.canvas != nil {
		origin, dir, ok := s.camera.Ray(s.x, s.y)
		if !ok {
			return geometry.Vec2{}, false
		}
		return s.canvas.Intersect(origin, dir)
	}
	p, ok := s.viewport.ToCanvas(s.x, s.y)
	if !ok {
		return p, false
	}
	if s.canvas != nil {
		if r, clipped := s.canvas.Surface(); clipped && !r.Contains(p) {
			return geometry.Vec2{}, false
		}
	}
	return p, true
}

// ClipTo bounds the orthographic viewport to canvas's drawing surface.
func (s *ScreenSource) ClipTo(canvas *Canvas) {
	s.canvas = canvas
}
