package dialog

import (
	"errors"
	"fmt"

	"github.com/sketchcoach/sketchcoach/internal/dimension"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

var ErrNotOpen = errors.New("no dimension dialog is open")

// Request identifies what is being dimensioned. Edge is EdgeNone for circles.
type Request struct {
	Kind document.ShapeKind `json:"kind"`
	Edge geometry.Edge      `json:"edge,omitempty"`
}

// EdgeName returns the edge as text, empty for circles.
func (r Request) EdgeName() string {
	if r.Edge == geometry.EdgeNone {
		return ""
	}
	return r.Edge.String()
}

// Dialog is the modal dimension-entry collaborator. Open replaces any dialog
// that is already showing; a replaced dialog never calls back.
type Dialog interface {
	Open(req Request, onConfirm func(v float64), onCancel func())
	Close()
}

type instance struct {
	req       Request
	onConfirm func(float64)
	onCancel  func()
}

// Prompt is an in-memory Dialog driven by text submissions.
type Prompt struct {
	current *instance
	opened  int
	closed  int
}

// NewPrompt creates a closed prompt.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Open implements Dialog.
func (p *Prompt) Open(req Request, onConfirm func(float64), onCancel func()) {
	if p.current != nil {
		p.Close()
	}
	p.current = &instance{req: req, onConfirm: onConfirm, onCancel: onCancel}
	p.opened++
}

// Close implements Dialog. Callbacks of the closed instance are dropped.
func (p *Prompt) Close() {
	if p.current == nil {
		return
	}
	p.current = nil
	p.closed++
}

// IsOpen reports whether a dialog is live.
func (p *Prompt) IsOpen() bool {
	return p.current != nil
}

// Current returns the live request.
func (p *Prompt) Current() (Request, bool) {
	if p.current == nil {
		return Request{}, false
	}
	return p.current.req, true
}

// Submit parses text and confirms the live dialog. Invalid text leaves the
// dialog open so the user can correct it.
func (p *Prompt) Submit(text string) error {
	inst := p.current
	if inst == nil {
		return ErrNotOpen
	}
	v, err := dimension.ParseValue(text)
	if err != nil {
		return fmt.Errorf("submit %s dimension: %w", inst.req.Kind, err)
	}
	p.current = nil
	p.closed++
	if inst.onConfirm != nil {
		inst.onConfirm(v)
	}
	return nil
}

// Cancel dismisses the live dialog.
func (p *Prompt) Cancel() error {
	inst := p.current
	if inst == nil {
		return ErrNotOpen
	}
	p.current = nil
	p.closed++
	if inst.onCancel != nil {
		inst.onCancel()
	}
	return nil
}

// Live returns the number of open dialogs, which is never more than one.
func (p *Prompt) Live() int {
	return p.opened - p.closed
}
