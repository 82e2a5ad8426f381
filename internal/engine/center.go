package engine

import (
	"log/slog"

	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

// tickCenter runs the drag gesture that centers kind on its reference point:
// the canvas origin for the rectangle, the rectangle center for the circle.
func (e *Engine) tickCenter(s pointer.Sample, kind document.ShapeKind) {
	shape, ok := e.registry.Get(kind)
	if !ok {
		return
	}
	ref, ok := e.centerReference(kind)
	if !ok {
		return
	}

	if s.Pressed && s.HasPosition && shape.Contains(s.Position) {
		e.dragging = true
	}

	if e.dragging && s.Held && s.HasPosition {
		p := geometry.SnapToGrid(s.Position, e.cfg.GridStep)
		p, snapX, snapY := geometry.ApplyAxisSnap(p, e.cfg.AxisSnapDistance)
		e.setAxisHighlights(snapX, snapY)
		p = geometry.SnapToPoint(p, ref, e.cfg.CenterSnapDistance)
		p = e.clampToSurface(shape.HalfExtents(), p)

		if p != shape.Center {
			shape.Center = p
			e.registry.Set(shape)
		}
	}

	if e.dragging && s.Released {
		e.dragging = false
		e.clearAxisHighlights()

		dist := shape.Center.Distance(ref)
		if dist >= e.cfg.CenteringTolerance {
			slog.Debug("shape released off center", "kind", kind, "distance", dist)
			return
		}
		if kind == document.KindRectangle {
			e.markStep(StepRectangleCentered)
			e.advance(StageDrawCircle)
		} else {
			e.markStep(StepCircleCentered)
			e.advance(StageAwaitDimensionConfirm)
		}
	}
}

func (e *Engine) centerReference(kind document.ShapeKind) (geometry.Vec2, bool) {
	if kind == document.KindRectangle {
		return geometry.Vec2{}, true
	}
	rect, ok := e.registry.Rectangle()
	if !ok {
		return geometry.Vec2{}, false
	}
	return rect.Center, true
}
