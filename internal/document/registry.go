package document

// Change describes a slot transition in the Registry. Shape is nil when the slot
// was cleared; Previous is nil when the slot was empty.
type Change struct {
	Kind     ShapeKind `json:"kind"`
	Shape    *Shape    `json:"shape"`
	Previous *Shape    `json:"previous"`
}

type listener struct {
	id int
	fn func(Change)
}

// Registry holds the session's rectangle and circle and notifies subscribers on
// every change. It performs no validation.
type Registry struct {
	rectangle *Shape
	circle    *Shape

	listeners []listener
	nextID    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Subscribe registers fn for change notifications. The returned func removes it.
func (r *Registry) Subscribe(fn func(Change)) (unsubscribe func()) {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// Rectangle returns the current rectangle, if any.
func (r *Registry) Rectangle() (Shape, bool) {
	return get(r.rectangle)
}

// Circle returns the current circle, if any.
func (r *Registry) Circle() (Shape, bool) {
	return get(r.circle)
}

// Get returns the shape in the slot for kind.
func (r *Registry) Get(kind ShapeKind) (Shape, bool) {
	return get(*r.slot(kind))
}

// SetRectangle stores s as the rectangle.
func (r *Registry) SetRectangle(s Shape) {
	s.Kind = KindRectangle
	r.Set(s)
}

// SetCircle stores s as the circle.
func (r *Registry) SetCircle(s Shape) {
	s.Kind = KindCircle
	r.Set(s)
}

// Set stores s in the slot for s.Kind, replacing any previous shape.
func (r *Registry) Set(s Shape) {
	slot := r.slot(s.Kind)
	prev := *slot
	stored := copyShape(&s)
	*slot = stored
	r.notify(Change{Kind: s.Kind, Shape: copyShape(stored), Previous: prev})
}

// Clear empties both slots. Only occupied slots produce notifications.
func (r *Registry) Clear() {
	for _, kind := range []ShapeKind{KindRectangle, KindCircle} {
		slot := r.slot(kind)
		if *slot == nil {
			continue
		}
		prev := *slot
		*slot = nil
		r.notify(Change{Kind: kind, Previous: prev})
	}
}

// Snapshot returns a copy of the registry contents.
func (r *Registry) Snapshot() Sketch {
	return Sketch{
		Rectangle: copyShape(r.rectangle),
		Circle:    copyShape(r.circle),
	}
}

func (r *Registry) slot(kind ShapeKind) **Shape {
	if kind == KindCircle {
		return &r.circle
	}
	return &r.rectangle
}

func (r *Registry) notify(c Change) {
	// Copy so listeners may unsubscribe while being notified.
	ls := make([]listener, len(r.listeners))
	copy(ls, r.listeners)
	for _, l := range ls {
		l.fn(c)
	}
}

func get(s *Shape) (Shape, bool) {
	if s == nil {
		return Shape{}, false
	}
	return *s, true
}

func copyShape(s *Shape) *Shape {
	if s == nil {
		return nil
	}
	c := *s
	if s.Children != nil {
		c.Children = append(c.Children[:0:0], s.Children...)
	}
	return &c
}
