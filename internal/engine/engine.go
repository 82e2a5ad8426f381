package engine

import (
	"fmt"
	"log/slog"

	"github.com/sketchcoach/sketchcoach/internal/control"
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/dimension"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

// Engine is the tutorial stage machine. It owns the shape registry, the current
// stage and the dimension entries. It is not safe for concurrent use; callers
// serialize access.
type Engine struct {
	cfg Config

	registry *document.Registry
	dialog   dialog.Dialog
	confirm  control.Control

	stage    Stage
	progress Progress

	// Draw gesture
	draft      *document.Shape
	dragOrigin geometry.Vec2
	armed      document.ShapeKind

	// Centering gesture
	dragging bool

	// Dimensioning
	rectDims    dimension.RectangleState
	circleDims  dimension.CircleState
	suspended   bool
	dialogToken int

	highlights highlights

	subscribers []subscriber
	nextSubID   int
	teardown    []func()

	// Dirty flag - draw commands need recompiling. Every emitted event sets it.
	dirty    bool
	commands []DrawCommand
}

// New creates an engine in StageDrawRectangle. A nil dialog or confirm control
// is replaced by the in-memory implementation.
func New(cfg Config, dlg dialog.Dialog, confirm control.Control) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if dlg == nil {
		dlg = dialog.NewPrompt()
	}
	if confirm == nil {
		confirm = control.NewButton("Dimensions")
	}

	e := &Engine{
		cfg:      cfg,
		registry: document.NewRegistry(),
		dialog:   dlg,
		confirm:  confirm,
		stage:    StageDrawRectangle,
		dirty:    true,
	}
	e.teardown = append(e.teardown,
		e.registry.Subscribe(e.onShapeChange),
		confirm.OnActivate(e.Confirm),
	)
	e.enter(StageDrawRectangle)
	return e, nil
}

// Close releases the registry and control subscriptions.
func (e *Engine) Close() {
	if e.suspended {
		e.dialog.Close()
		e.suspended = false
	}
	for _, fn := range e.teardown {
		fn()
	}
	e.teardown = nil
	e.subscribers = nil
}

// --- Commands (input → engine) ---

// Tick processes one pointer sample for the active stage. While a dimension
// dialog is open the sample is ignored.
func (e *Engine) Tick(s pointer.Sample) {
	if e.suspended {
		return
	}

	switch e.stage {
	case StageDrawRectangle:
		e.tickDraw(s, document.KindRectangle, StageCenterRectangle)
	case StageCenterRectangle:
		e.tickCenter(s, document.KindRectangle)
	case StageDrawCircle:
		e.tickDraw(s, document.KindCircle, StageCenterCircle)
	case StageCenterCircle:
		e.tickCenter(s, document.KindCircle)
	case StageDimensionRectangle:
		e.tickDimensionRectangle(s)
	case StageDimensionCircle:
		e.tickDimensionCircle(s)
	}
}

// Confirm handles the confirm control. It only has an effect in
// StageAwaitDimensionConfirm.
func (e *Engine) Confirm() {
	if e.suspended || e.stage != StageAwaitDimensionConfirm {
		return
	}
	e.advance(StageDimensionRectangle)
}

// ArmDraw enables drawing of kind when RequireDrawArm is set. It reports
// whether kind is the shape the current stage draws.
func (e *Engine) ArmDraw(kind document.ShapeKind) bool {
	want, ok := drawKind(e.stage)
	if !ok || want != kind {
		return false
	}
	e.armed = kind
	return true
}

// Reset returns the engine to StageDrawRectangle, discarding all shapes,
// dimension entries and progress.
func (e *Engine) Reset() {
	from := e.stage

	if e.suspended {
		e.closeDialog()
	}
	e.dialogToken++
	e.discardDraft()
	e.dragging = false
	e.armed = ""
	e.clearEdgeHighlight()
	e.clearAxisHighlights()

	e.registry.Clear()
	e.rectDims.Reset()
	e.circleDims.Reset()
	e.progress = Progress{}

	e.confirm.SetEnabled(false)
	e.stage = StageDrawRectangle
	e.emit(Event{Type: EventStageChanged, From: &from, Status: e.stage.Status()})
	e.enter(StageDrawRectangle)

	slog.Info("engine reset", "from", from)
}

// --- Queries (engine → renderer) ---

// Stage returns the active stage.
func (e *Engine) Stage() Stage {
	return e.stage
}

// Done reports whether the tutorial is complete.
func (e *Engine) Done() bool {
	return e.stage == StageDone
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Suspended reports whether a dimension dialog is blocking input.
func (e *Engine) Suspended() bool {
	return e.suspended
}

// Progress returns the checklist state.
func (e *Engine) Progress() Progress {
	return e.progress
}

// Rectangle returns the finalized rectangle, if any.
func (e *Engine) Rectangle() (document.Shape, bool) {
	return e.registry.Rectangle()
}

// Circle returns the finalized circle, if any.
func (e *Engine) Circle() (document.Shape, bool) {
	return e.registry.Circle()
}

// Draft returns the shape being drawn, if any.
func (e *Engine) Draft() (document.Shape, bool) {
	if e.draft == nil {
		return document.Shape{}, false
	}
	return *e.draft, true
}

// RectangleEntries returns the recorded rectangle values, oldest first.
func (e *Engine) RectangleEntries() []float64 {
	return e.rectDims.Values()
}

// State is a read-only snapshot of the engine.
type State struct {
	Stage          Stage           `json:"stage"`
	Status         string          `json:"status"`
	Progress       Progress        `json:"progress"`
	Sketch         document.Sketch `json:"sketch"`
	Draft          *document.Shape `json:"draft,omitempty"`
	DialogOpen     bool            `json:"dialogOpen"`
	RectEntries    []float64       `json:"rectEntries"`
	CircleDiameter *float64        `json:"circleDiameter"`
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() State {
	st := State{
		Stage:       e.stage,
		Status:      e.stage.Status(),
		Progress:    e.progress,
		Sketch:      e.registry.Snapshot(),
		DialogOpen:  e.suspended,
		RectEntries: e.rectDims.Values(),
	}
	if d, ok := e.Draft(); ok {
		st.Draft = &d
	}
	if v, ok := e.circleDims.Value(); ok {
		st.CircleDiameter = &v
	}
	return st
}

// --- Stage transitions ---

// advance moves to next, which must be later than the current stage.
func (e *Engine) advance(next Stage) {
	if next <= e.stage {
		slog.Warn("ignoring backward stage transition", "from", e.stage, "to", next)
		return
	}
	from := e.stage
	e.exit(from)
	e.stage = next
	e.emit(Event{Type: EventStageChanged, From: &from, Status: next.Status()})
	e.enter(next)

	slog.Info("stage changed", "from", from, "to", next)
}

func (e *Engine) exit(s Stage) {
	switch s {
	case StageDrawRectangle, StageDrawCircle:
		e.armed = ""
		e.clearAxisHighlights()
	case StageCenterRectangle, StageCenterCircle:
		e.dragging = false
		e.clearAxisHighlights()
	case StageAwaitDimensionConfirm:
		e.confirm.SetEnabled(false)
	case StageDimensionRectangle, StageDimensionCircle:
		e.clearEdgeHighlight()
	}
}

func (e *Engine) enter(s Stage) {
	switch s {
	case StageAwaitDimensionConfirm:
		e.confirm.SetEnabled(true)
	case StageDone:
		e.markStep(StepCircleDimensioned)
		e.emit(Event{Type: EventSessionDone, Status: s.Status()})
	}
}

// onShapeChange forwards registry changes to subscribers.
func (e *Engine) onShapeChange(c document.Change) {
	switch {
	case c.Shape == nil:
		e.emit(Event{Type: EventShapeDestroyed, Shape: c.Previous})
	case c.Previous == nil:
		e.emit(Event{Type: EventShapeCreated, Shape: c.Shape})
	default:
		e.emit(Event{Type: EventShapeUpdated, Shape: c.Shape})
	}
}

func drawKind(s Stage) (document.ShapeKind, bool) {
	switch s {
	case StageDrawRectangle:
		return document.KindRectangle, true
	case StageDrawCircle:
		return document.KindCircle, true
	}
	return "", false
}
