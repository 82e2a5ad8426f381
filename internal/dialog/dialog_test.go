package dialog

import (
	"errors"
	"testing"

	"github.com/sketchcoach/sketchcoach/internal/dimension"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

func TestPromptSubmit(t *testing.T) {
	p := NewPrompt()
	var got float64
	p.Open(Request{Kind: document.KindRectangle, Edge: geometry.EdgeTop}, func(v float64) { got = v }, nil)

	if err := p.Submit("abc"); !errors.Is(err, dimension.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !p.IsOpen() {
		t.Fatal("invalid input should keep the dialog open")
	}

	if err := p.Submit("60"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 60 {
		t.Errorf("expected 60, got %v", got)
	}
	if p.IsOpen() {
		t.Error("dialog should close after a valid submit")
	}
	if err := p.Submit("60"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}

func TestPromptCancel(t *testing.T) {
	p := NewPrompt()
	cancelled := false
	confirmed := false
	p.Open(Request{Kind: document.KindCircle}, func(float64) { confirmed = true }, func() { cancelled = true })

	if err := p.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cancelled || confirmed {
		t.Errorf("expected only cancel callback, cancelled=%v confirmed=%v", cancelled, confirmed)
	}
	if err := p.Cancel(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}

func TestPromptReplacesOpenInstance(t *testing.T) {
	p := NewPrompt()
	firstCalled := false
	p.Open(Request{Kind: document.KindRectangle, Edge: geometry.EdgeLeft}, func(float64) { firstCalled = true }, func() { firstCalled = true })

	var second float64
	p.Open(Request{Kind: document.KindCircle}, func(v float64) { second = v }, nil)

	if p.Live() != 1 {
		t.Errorf("expected exactly 1 live dialog, got %d", p.Live())
	}
	req, ok := p.Current()
	if !ok || req.Kind != document.KindCircle {
		t.Errorf("expected circle request, got %+v", req)
	}

	if err := p.Submit("10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstCalled {
		t.Error("replaced dialog must not call back")
	}
	if second != 10 {
		t.Errorf("expected 10, got %v", second)
	}
}

func TestRequestEdgeName(t *testing.T) {
	if name := (Request{Kind: document.KindCircle}).EdgeName(); name != "" {
		t.Errorf("expected empty edge name, got %q", name)
	}
	if name := (Request{Kind: document.KindRectangle, Edge: geometry.EdgeBottom}).EdgeName(); name != "bottom" {
		t.Errorf("expected bottom, got %q", name)
	}
}
