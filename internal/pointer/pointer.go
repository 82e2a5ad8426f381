package pointer

import "github.com/sketchcoach/sketchcoach/internal/geometry"

// Sample is one tick of pointer input in canvas-local space.
type Sample struct {
	Pressed  bool `json:"pressed"`
	Held     bool `json:"held"`
	Released bool `json:"released"`

	// Position is only meaningful when HasPosition is true: the cursor or ray
	// intersected the canvas (and the drawing surface, if one is set).
	Position    geometry.Vec2 `json:"position"`
	HasPosition bool          `json:"hasPosition"`
}

// At returns a copy of s positioned at p.
func (s Sample) At(p geometry.Vec2) Sample {
	s.Position = p
	s.HasPosition = true
	return s
}

// Source produces one Sample per tick.
type Source interface {
	Poll() Sample
}

// Button turns a level-triggered binary input into press/release edges.
type Button struct {
	down bool
}

// Update records the current level and reports the edges since the last call.
func (b *Button) Update(down bool) (pressed, released bool) {
	pressed = down && !b.down
	released = !down && b.down
	b.down = down
	return pressed, released
}

// Down reports the last recorded level.
func (b *Button) Down() bool {
	return b.down
}

// sample builds a Sample from a button update and an optional position.
func sample(b *Button, down bool, p geometry.Vec2, ok bool) Sample {
	pressed, released := b.Update(down)
	s := Sample{Pressed: pressed, Held: down, Released: released}
	if ok {
		s = s.At(p)
	}
	return s
}
