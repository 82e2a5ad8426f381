package engine

import (
	"log/slog"
	"math"

	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

// tickDraw runs the draw gesture for kind. A released draft at or above the
// minimum magnitude is finalized and the machine advances to next.
func (e *Engine) tickDraw(s pointer.Sample, kind document.ShapeKind, next Stage) {
	if e.cfg.RequireDrawArm && e.armed != kind {
		return
	}

	if s.Pressed {
		if !s.HasPosition {
			return
		}
		e.startDraft(kind, geometry.SnapToGrid(s.Position, e.cfg.GridStep))
	}

	if e.draft != nil && s.Held && s.HasPosition {
		e.resizeDraft(s.Position)
	}

	if e.draft != nil && s.Released {
		e.finishDraft(next)
	}
}

func (e *Engine) startDraft(kind document.ShapeKind, origin geometry.Vec2) {
	e.discardDraft()
	draft := document.NewShape(kind, origin)
	e.draft = &draft
	e.dragOrigin = origin
	e.emit(Event{Type: EventDraftChanged, Shape: e.copyDraft()})
}

func (e *Engine) resizeDraft(pos geometry.Vec2) {
	delta := geometry.SnapToGrid(pos, e.cfg.GridStep).Sub(e.dragOrigin)

	w, h := math.Abs(delta.X), math.Abs(delta.Y)
	if e.draft.Kind == document.KindCircle {
		w = math.Max(w, h)
	}
	shape := e.draft.WithSize(w, h)

	center, snapX, snapY := geometry.ApplyAxisSnap(e.dragOrigin.Add(delta.Scale(0.5)), e.cfg.AxisSnapDistance)
	e.setAxisHighlights(snapX, snapY)
	shape.Center = e.clampToSurface(shape.HalfExtents(), center)

	if shape.Center == e.draft.Center && shape.Width == e.draft.Width && shape.Height == e.draft.Height {
		return
	}
	*e.draft = shape
	e.emit(Event{Type: EventDraftChanged, Shape: e.copyDraft()})
}

func (e *Engine) finishDraft(next Stage) {
	e.clearAxisHighlights()

	if e.draft.Magnitude() < e.cfg.MinDrawMagnitude {
		slog.Debug("draft below minimum size discarded", "kind", e.draft.Kind, "magnitude", e.draft.Magnitude())
		e.discardDraft()
		return
	}

	shape := *e.draft
	e.draft = nil
	if shape.Kind == document.KindRectangle {
		shape.Children = edgeStrips(shape.Width, shape.Height, e.cfg.EdgeThickness)
		e.registry.SetRectangle(shape)
		e.markStep(StepRectangleDrawn)
	} else {
		e.registry.SetCircle(shape)
		e.markStep(StepCircleDrawn)
	}
	e.advance(next)
}

func (e *Engine) discardDraft() {
	if e.draft == nil {
		return
	}
	discarded := e.copyDraft()
	e.draft = nil
	e.emit(Event{Type: EventDraftDiscarded, Shape: discarded})
}

func (e *Engine) copyDraft() *document.Shape {
	d := *e.draft
	return &d
}

func (e *Engine) clampToSurface(half, center geometry.Vec2) geometry.Vec2 {
	if !e.cfg.hasSurface() {
		return center
	}
	return geometry.ClampToSurface(half, center, e.cfg.Surface)
}

// edgeStrips returns the hit areas along each rectangle edge in shape-local
// space, ordered left, right, top, bottom.
func edgeStrips(w, h, thickness float64) []geometry.Rect {
	if thickness <= 0 {
		return nil
	}
	band := 2 * thickness
	return []geometry.Rect{
		{Center: geometry.V(-w/2, 0), Width: band, Height: h},
		{Center: geometry.V(w/2, 0), Width: band, Height: h},
		{Center: geometry.V(0, h/2), Width: w, Height: band},
		{Center: geometry.V(0, -h/2), Width: w, Height: band},
	}
}
