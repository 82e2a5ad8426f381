package control

// Control is the confirm-stage element the engine enables and listens to.
type Control interface {
	SetEnabled(enabled bool)
	OnActivate(fn func()) (remove func())
}

// Button is an in-memory Control. Activations while disabled are ignored.
type Button struct {
	Label string

	enabled   bool
	listeners map[int]func()
	order     []int
	nextID    int
}

// NewButton creates a disabled button.
func NewButton(label string) *Button {
	return &Button{Label: label, listeners: make(map[int]func())}
}

// SetEnabled toggles the button.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Enabled reports whether the button accepts activation.
func (b *Button) Enabled() bool {
	return b.enabled
}

// OnActivate adds a listener and returns a func that removes it.
func (b *Button) OnActivate(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.listeners[id] = fn
	b.order = append(b.order, id)

	return func() {
		delete(b.listeners, id)
		for i, o := range b.order {
			if o == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Activate invokes listeners in registration order. It reports whether the
// button was enabled.
func (b *Button) Activate() bool {
	if !b.enabled {
		return false
	}
	ids := append([]int(nil), b.order...)
	for _, id := range ids {
		if fn, ok := b.listeners[id]; ok {
			fn()
		}
	}
	return true
}

// ListenerCount returns the number of registered listeners.
func (b *Button) ListenerCount() int {
	return len(b.order)
}
