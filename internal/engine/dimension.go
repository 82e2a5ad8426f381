package engine

import (
	"log/slog"

	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

func (e *Engine) tickDimensionRectangle(s pointer.Sample) {
	rect, ok := e.registry.Rectangle()
	if !ok {
		return
	}

	edge := geometry.EdgeNone
	if s.HasPosition && rect.Contains(s.Position) {
		edge = geometry.ClassifyEdge(rect.Bounds(), rect.Local(s.Position), e.cfg.EdgeThickness)
	}
	e.setEdgeHighlight(edge, ColorHover)

	if !s.Pressed || edge == geometry.EdgeNone {
		return
	}
	e.setEdgeHighlight(edge, ColorSelect)
	e.openDialog(dialog.Request{Kind: document.KindRectangle, Edge: edge})
}

func (e *Engine) tickDimensionCircle(s pointer.Sample) {
	circle, ok := e.registry.Circle()
	if !ok {
		return
	}
	if s.Pressed && s.HasPosition && circle.Contains(s.Position) {
		e.openDialog(dialog.Request{Kind: document.KindCircle})
	}
}

// openDialog shows the dimension dialog and suspends input until it confirms
// or cancels. Callbacks from an older dialog are ignored.
func (e *Engine) openDialog(req dialog.Request) {
	if e.suspended {
		e.closeDialog()
	}
	e.dialogToken++
	token := e.dialogToken
	e.suspended = true

	e.emit(Event{Type: EventDialogOpened, Dialog: &req})
	e.dialog.Open(req,
		func(v float64) { e.onDimensionConfirm(token, req, v) },
		func() { e.onDimensionCancel(token, req) },
	)
}

func (e *Engine) closeDialog() {
	e.dialog.Close()
	e.resume(nil)
}

func (e *Engine) resume(req *dialog.Request) {
	e.suspended = false
	e.clearEdgeHighlight()
	e.emit(Event{Type: EventDialogClosed, Dialog: req})
}

func (e *Engine) onDimensionConfirm(token int, req dialog.Request, v float64) {
	if token != e.dialogToken || !e.suspended {
		slog.Debug("ignoring stale dimension dialog", "kind", req.Kind)
		return
	}
	e.resume(&req)

	switch req.Kind {
	case document.KindRectangle:
		e.applyRectangleDimension(req.Edge, v)
	case document.KindCircle:
		e.applyCircleDimension(v)
	}
}

func (e *Engine) onDimensionCancel(token int, req dialog.Request) {
	if token != e.dialogToken || !e.suspended {
		return
	}
	e.resume(&req)
}

// applyRectangleDimension sets the width for a top or bottom edge and the
// height for a left or right edge, then checks both entries against the target.
func (e *Engine) applyRectangleDimension(edge geometry.Edge, v float64) {
	rect, ok := e.registry.Rectangle()
	if !ok || e.stage != StageDimensionRectangle || edge == geometry.EdgeNone {
		return
	}

	size := v * e.cfg.UnitScale
	if edge.Horizontal() {
		rect.Width = size
	} else {
		rect.Height = size
	}
	rect.Children = edgeStrips(rect.Width, rect.Height, e.cfg.EdgeThickness)
	e.registry.SetRectangle(rect)
	e.rectDims.Record(v)

	matched := e.rectDims.Matches(e.cfg.Target)
	slog.Info("rectangle dimension entered", "edge", edge, "value", v, "matched", matched)
	if matched {
		e.markStep(StepRectangleDimensioned)
		e.advance(StageDimensionCircle)
	}
}

func (e *Engine) applyCircleDimension(v float64) {
	circle, ok := e.registry.Circle()
	if !ok || e.stage != StageDimensionCircle {
		return
	}

	size := v * e.cfg.UnitScale
	e.registry.SetCircle(circle.WithSize(size, size))
	e.circleDims.Record(v)

	matched := e.circleDims.Matches(e.cfg.Target)
	slog.Info("circle dimension entered", "value", v, "matched", matched)
	if matched {
		e.advance(StageDone)
	}
}
