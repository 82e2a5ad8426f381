package engine

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/sketchcoach/sketchcoach/internal/control"
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

type harness struct {
	*Engine
	prompt  *dialog.Prompt
	confirm *control.Button
	events  []Event
}

func newHarness(t *testing.T, mutate ...func(*Config)) *harness {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	h := &harness{prompt: dialog.NewPrompt(), confirm: control.NewButton("Dimensions")}
	e, err := New(cfg, h.prompt, h.confirm)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.Engine = e
	e.Subscribe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

func press(x, y float64) pointer.Sample {
	return pointer.Sample{Pressed: true, Held: true}.At(geometry.V(x, y))
}

func hold(x, y float64) pointer.Sample {
	return pointer.Sample{Held: true}.At(geometry.V(x, y))
}

func release(x, y float64) pointer.Sample {
	return pointer.Sample{Released: true}.At(geometry.V(x, y))
}

func (h *harness) drag(fromX, fromY, toX, toY float64) {
	h.Tick(press(fromX, fromY))
	h.Tick(hold(toX, toY))
	h.Tick(release(toX, toY))
}

func (h *harness) eventsOf(typ EventType) []Event {
	var out []Event
	for _, ev := range h.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func (h *harness) expectStage(t *testing.T, want Stage) {
	t.Helper()
	if got := h.Stage(); got != want {
		t.Fatalf("expected stage %s, got %s", want, got)
	}
}

func (h *harness) submit(t *testing.T, text string) {
	t.Helper()
	if err := h.prompt.Submit(text); err != nil {
		t.Fatalf("submit %q: %v", text, err)
	}
}

// toDimensioning draws and centers both shapes and confirms.
func (h *harness) toDimensioning(t *testing.T) {
	t.Helper()
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)
	h.drag(-20, -20, 20, 20)
	h.drag(0, 0, 0, 0)
	h.confirm.Activate()
	h.expectStage(t, StageDimensionRectangle)
}

func TestScenario(t *testing.T) {
	h := newHarness(t)
	h.expectStage(t, StageDrawRectangle)

	h.drag(-60, -30, 60, 30)
	h.expectStage(t, StageCenterRectangle)
	rect, ok := h.Rectangle()
	if !ok || rect.Width != 120 || rect.Height != 60 || rect.Center != geometry.V(0, 0) {
		t.Fatalf("expected 120x60 rectangle at origin, got %+v ok=%v", rect, ok)
	}

	h.drag(0, 0, 0, 0)
	h.expectStage(t, StageDrawCircle)

	h.drag(-20, -20, 20, 20)
	h.expectStage(t, StageCenterCircle)
	circle, ok := h.Circle()
	if !ok || circle.Width != 40 || circle.Height != 40 {
		t.Fatalf("expected 40 diameter circle, got %+v ok=%v", circle, ok)
	}

	h.drag(0, 0, 0, 0)
	h.expectStage(t, StageAwaitDimensionConfirm)
	if !h.confirm.Enabled() {
		t.Fatal("confirm control should be enabled while awaiting confirmation")
	}

	h.confirm.Activate()
	h.expectStage(t, StageDimensionRectangle)
	if h.confirm.Enabled() {
		t.Error("confirm control should be disabled after confirmation")
	}

	h.Tick(press(0, 25))
	req, ok := h.prompt.Current()
	if !ok || req.Kind != document.KindRectangle || req.Edge != geometry.EdgeTop {
		t.Fatalf("expected top edge dialog, got %+v ok=%v", req, ok)
	}
	h.submit(t, "60")
	h.expectStage(t, StageDimensionRectangle)

	h.Tick(release(0, 25))
	h.Tick(press(-30, 0))
	if req, _ := h.prompt.Current(); req.Edge != geometry.EdgeLeft {
		t.Fatalf("expected left edge dialog, got %+v", req)
	}
	h.submit(t, "30")
	h.expectStage(t, StageDimensionCircle)

	rect, _ = h.Rectangle()
	if rect.Width != 60 || rect.Height != 30 {
		t.Errorf("expected 60x30 rectangle, got %vx%v", rect.Width, rect.Height)
	}

	h.Tick(release(-30, 0))
	h.Tick(press(0, 0))
	if req, ok := h.prompt.Current(); !ok || req.Kind != document.KindCircle {
		t.Fatalf("expected circle dialog, got %+v ok=%v", req, ok)
	}
	h.submit(t, "10")
	h.expectStage(t, StageDone)

	if got := h.Progress().Completed(); got != 6 {
		t.Errorf("expected all 6 steps completed, got %d", got)
	}
	if len(h.eventsOf(EventSessionDone)) != 1 {
		t.Error("expected one session.done event")
	}
	if len(h.eventsOf(EventStepCompleted)) != 6 {
		t.Errorf("expected 6 step.completed events, got %d", len(h.eventsOf(EventStepCompleted)))
	}
}

func TestRectangleDimensionNoMatch(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)

	h.Tick(press(0, 25))
	h.submit(t, "60")
	h.Tick(press(-30, 0))
	h.submit(t, "31")
	h.expectStage(t, StageDimensionRectangle)

	// FIFO keeps the last two entries: (31, 30) still misses.
	h.Tick(press(-30, 0))
	h.submit(t, "30")
	h.expectStage(t, StageDimensionRectangle)
	if got := h.RectangleEntries(); len(got) != 2 || got[0] != 31 || got[1] != 30 {
		t.Fatalf("expected entries [31 30], got %v", got)
	}

	h.Tick(press(0, 15))
	h.submit(t, "60")
	h.expectStage(t, StageDimensionCircle)
}

func TestCircleDimensionNoMatch(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)
	h.Tick(press(0, 25))
	h.submit(t, "30")
	h.Tick(press(-30, 0))
	h.submit(t, "60")
	h.expectStage(t, StageDimensionCircle)

	h.Tick(press(0, 0))
	h.submit(t, "12")
	h.expectStage(t, StageDimensionCircle)
	circle, _ := h.Circle()
	if circle.Width != 12 {
		t.Errorf("expected circle resized to 12 even without a match, got %v", circle.Width)
	}
	if h.Progress()[StepCircleDimensioned-1] {
		t.Error("circle step should not be marked without a match")
	}
}

func TestMonotonicStaging(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.GridStep = 1 })
	rng := rand.New(rand.NewSource(7))

	down := false
	last := h.Stage()
	for i := 0; i < 5000; i++ {
		s := pointer.Sample{}
		next := rng.Intn(4) > 0
		s.Pressed = next && !down
		s.Released = !next && down
		s.Held = next
		down = next
		if rng.Intn(10) > 0 {
			s = s.At(geometry.V(float64(rng.Intn(200)-100), float64(rng.Intn(200)-100)))
		}
		h.Tick(s)

		switch rng.Intn(50) {
		case 0:
			h.confirm.Activate()
		case 1:
			_ = h.prompt.Submit([]string{"60", "30", "10", "x", "5"}[rng.Intn(5)])
		case 2:
			_ = h.prompt.Cancel()
		}

		if h.Stage() < last {
			t.Fatalf("stage decreased from %s to %s at tick %d", last, h.Stage(), i)
		}
		last = h.Stage()
	}

	for _, ev := range h.eventsOf(EventStageChanged) {
		if ev.From == nil || *ev.From >= ev.Stage {
			t.Errorf("non-forward stage change event %+v", ev)
		}
	}
}

func TestDrawBelowMinimumIsDiscarded(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.GridStep = 1 })

	h.drag(0, 0, 3, 3)

	h.expectStage(t, StageDrawRectangle)
	if _, ok := h.Rectangle(); ok {
		t.Error("undersized draw should not reach the registry")
	}
	if _, ok := h.Draft(); ok {
		t.Error("draft should be discarded on release")
	}
	if len(h.eventsOf(EventDraftDiscarded)) != 1 {
		t.Errorf("expected one draft.discarded event, got %d", len(h.eventsOf(EventDraftDiscarded)))
	}
	if len(h.eventsOf(EventShapeCreated)) != 0 {
		t.Error("no shape should be created")
	}

	// Same gesture with the circle.
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)
	h.expectStage(t, StageDrawCircle)
	h.drag(0, 0, 2, 4)
	h.expectStage(t, StageDrawCircle)
	if _, ok := h.Circle(); ok {
		t.Error("undersized circle should not reach the registry")
	}
}

func TestDrawCircleUsesLargerSide(t *testing.T) {
	h := newHarness(t)
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)

	h.drag(40, 40, 100, 60)
	circle, ok := h.Circle()
	if !ok || circle.Width != 60 || circle.Height != 60 {
		t.Fatalf("expected 60 diameter circle, got %+v", circle)
	}
	if circle.Center != geometry.V(70, 50) {
		t.Errorf("expected center (70,50), got %v", circle.Center)
	}
}

func TestDrawSnapsAndClampsToSurface(t *testing.T) {
	h := newHarness(t, func(c *Config) {
		c.Surface = geometry.Rect{Width: 200, Height: 100}
	})

	h.drag(82, 31, 118, 58)

	rect, ok := h.Rectangle()
	if !ok {
		t.Fatal("expected rectangle")
	}
	if rect.Width != 40 || rect.Height != 30 {
		t.Errorf("expected grid-snapped 40x30, got %vx%v", rect.Width, rect.Height)
	}
	if rect.Center != geometry.V(80, 35) {
		t.Errorf("expected center clamped to (80,35), got %v", rect.Center)
	}
}

func TestCenteringSnap(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.AxisSnapDistance = 0 })
	h.drag(80, 40, 120, 60)
	h.expectStage(t, StageCenterRectangle)

	// Far from the origin: no snap, no advance.
	h.drag(100, 50, 30, 20)
	h.expectStage(t, StageCenterRectangle)
	rect, _ := h.Rectangle()
	if rect.Center != geometry.V(30, 20) {
		t.Fatalf("expected center (30,20), got %v", rect.Center)
	}

	// Pressing outside the shape does not start a drag.
	h.drag(-200, -200, 0, 0)
	h.expectStage(t, StageCenterRectangle)

	// Within the snap distance: snapped exactly, release advances.
	h.drag(30, 20, 20, 10)
	h.expectStage(t, StageDrawCircle)
	rect, _ = h.Rectangle()
	if rect.Center != geometry.V(0, 0) {
		t.Errorf("expected center snapped to origin, got %v", rect.Center)
	}
}

func TestCircleCentersOnRectangle(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.AxisSnapDistance = 0 })
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)
	h.drag(60, 60, 100, 100)
	h.expectStage(t, StageCenterCircle)

	h.drag(80, 80, 10, 10)
	h.expectStage(t, StageAwaitDimensionConfirm)
	circle, _ := h.Circle()
	if circle.Center != geometry.V(0, 0) {
		t.Errorf("expected circle on rectangle center, got %v", circle.Center)
	}
}

func TestAxisHighlightEvents(t *testing.T) {
	h := newHarness(t)
	h.Tick(press(-60, -30))
	h.Tick(hold(60, 30))

	var on []HighlightTarget
	for _, ev := range h.eventsOf(EventHighlight) {
		if ev.Highlight.Color == ColorAxis {
			on = append(on, ev.Highlight.Target)
		}
	}
	if len(on) != 2 {
		t.Fatalf("expected both axes highlighted, got %v", on)
	}

	before := len(h.eventsOf(EventHighlight))
	h.Tick(hold(60, 30))
	if len(h.eventsOf(EventHighlight)) != before {
		t.Error("unchanged axis state should not emit")
	}

	h.Tick(release(60, 30))
	if h.highlights.axisX || h.highlights.axisY {
		t.Error("release should clear axis highlights")
	}
}

func TestEdgeHoverHighlight(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)
	h.events = nil

	h.Tick(hold(0, 25))
	h.Tick(hold(5, 25))
	hl := h.eventsOf(EventHighlight)
	if len(hl) != 1 || hl[0].Highlight.Edge != geometry.EdgeTop || hl[0].Highlight.Color != ColorHover {
		t.Fatalf("expected one top hover highlight, got %+v", hl)
	}

	h.Tick(hold(0, 0))
	hl = h.eventsOf(EventHighlight)
	if len(hl) != 2 || hl[1].Highlight.Color != ColorNone {
		t.Fatalf("expected highlight cleared, got %+v", hl)
	}

	h.Tick(press(55, 0))
	last := h.eventsOf(EventHighlight)
	if got := last[len(last)-1].Highlight; got.Edge != geometry.EdgeRight || got.Color != ColorSelect {
		t.Errorf("expected right edge selected, got %+v", got)
	}

	cmds := h.Commands()
	found := false
	for _, c := range cmds {
		if c.Op == "edge" && c.Edge == "right" && c.Fill == ColorSelect {
			found = true
		}
	}
	if !found {
		t.Errorf("expected selected edge draw command, got %+v", cmds)
	}
}

func TestInteriorClickOpensNoDialog(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)

	h.Tick(press(0, 0))
	if h.prompt.IsOpen() {
		t.Error("clicking the rectangle interior should not open a dialog")
	}
	h.Tick(press(500, 500))
	if h.prompt.IsOpen() {
		t.Error("clicking outside should not open a dialog")
	}
}

func TestDialogSuspendsInput(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)

	h.Tick(press(0, 25))
	if !h.Suspended() {
		t.Fatal("expected input suspended while dialog open")
	}
	before := h.Snapshot()

	h.Tick(release(0, 25))
	h.Tick(press(-60, 0))
	h.Tick(hold(-60, 0))

	if req, _ := h.prompt.Current(); req.Edge != geometry.EdgeTop {
		t.Errorf("input while suspended must not replace the dialog, got %+v", req)
	}
	if h.prompt.Live() != 1 {
		t.Errorf("expected 1 live dialog, got %d", h.prompt.Live())
	}
	after := h.Snapshot()
	if after.Stage != before.Stage || len(after.RectEntries) != len(before.RectEntries) {
		t.Error("state changed while suspended")
	}
}

func TestDialogInvalidInputReprompts(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)
	h.Tick(press(0, 25))

	if err := h.prompt.Submit("sixty"); err == nil {
		t.Fatal("expected parse error")
	}
	if !h.Suspended() || !h.prompt.IsOpen() {
		t.Fatal("invalid input should keep the dialog open and input suspended")
	}
	h.submit(t, "60")
	if h.Suspended() {
		t.Error("valid input should resume input")
	}
}

func TestDialogCancel(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)
	rect, _ := h.Rectangle()

	h.Tick(press(0, 25))
	if err := h.prompt.Cancel(); err != nil {
		t.Fatal(err)
	}

	if h.Suspended() {
		t.Error("cancel should resume input")
	}
	if got, _ := h.Rectangle(); got.Width != rect.Width || got.Height != rect.Height {
		t.Error("cancel must not change the rectangle")
	}
	if len(h.RectangleEntries()) != 0 {
		t.Error("cancel must not record an entry")
	}
	if h.highlights.edge != geometry.EdgeNone {
		t.Error("cancel should clear the selected edge")
	}
	if len(h.eventsOf(EventDialogClosed)) != 1 {
		t.Errorf("expected one dialog.closed event, got %d", len(h.eventsOf(EventDialogClosed)))
	}
}

type keepingDialog struct {
	opens    []dialog.Request
	confirms []func(float64)
	closes   int
}

func (d *keepingDialog) Open(req dialog.Request, onConfirm func(float64), _ func()) {
	d.opens = append(d.opens, req)
	d.confirms = append(d.confirms, onConfirm)
}

func (d *keepingDialog) Close() { d.closes++ }

func TestModalExclusivity(t *testing.T) {
	dlg := &keepingDialog{}
	e, err := New(DefaultConfig(), dlg, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := &harness{Engine: e, confirm: control.NewButton("")}
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)
	h.drag(-20, -20, 20, 20)
	h.drag(0, 0, 0, 0)
	e.Confirm()

	h.Tick(press(0, 25))
	e.openDialog(dialog.Request{Kind: document.KindRectangle, Edge: geometry.EdgeLeft})

	if dlg.closes != 1 {
		t.Fatalf("expected the first dialog closed before the second opened, got %d closes", dlg.closes)
	}
	if len(dlg.opens) != 2 {
		t.Fatalf("expected 2 opens, got %d", len(dlg.opens))
	}

	// A late confirm from the replaced dialog is ignored.
	dlg.confirms[0](60)
	if len(e.RectangleEntries()) != 0 || !e.Suspended() {
		t.Error("stale dialog callback must not apply")
	}

	dlg.confirms[1](30)
	rect, _ := e.Rectangle()
	if rect.Height != 30 || e.Suspended() {
		t.Errorf("expected live dialog to apply height 30, got %+v suspended=%v", rect, e.Suspended())
	}
}

func TestMissingGeometryIsNoop(t *testing.T) {
	h := newHarness(t)

	h.stage = StageDimensionCircle
	h.Tick(press(0, 0))
	if h.prompt.IsOpen() {
		t.Error("no circle: dimension click should do nothing")
	}

	h.stage = StageCenterRectangle
	h.drag(0, 0, 0, 0)
	h.expectStage(t, StageCenterRectangle)

	h.stage = StageCenterCircle
	h.drag(0, 0, 0, 0)
	h.expectStage(t, StageCenterCircle)
}

func TestNoPositionIsNoop(t *testing.T) {
	h := newHarness(t)

	h.Tick(pointer.Sample{Pressed: true, Held: true})
	if _, ok := h.Draft(); ok {
		t.Fatal("press without position must not start a draft")
	}

	h.Tick(press(-60, -30))
	h.Tick(hold(60, 30))
	h.Tick(pointer.Sample{Held: true})
	draft, _ := h.Draft()
	if draft.Width != 120 || draft.Height != 60 {
		t.Errorf("held sample without position must keep the draft, got %+v", draft)
	}
	h.Tick(pointer.Sample{Released: true})
	h.expectStage(t, StageCenterRectangle)
}

func TestRequireDrawArm(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.RequireDrawArm = true })

	h.drag(-60, -30, 60, 30)
	h.expectStage(t, StageDrawRectangle)

	if h.ArmDraw(document.KindCircle) {
		t.Error("arming the circle during the rectangle stage should fail")
	}
	if !h.ArmDraw(document.KindRectangle) {
		t.Fatal("arming the rectangle should succeed")
	}
	h.drag(-60, -30, 60, 30)
	h.expectStage(t, StageCenterRectangle)

	h.drag(0, 0, 0, 0)
	h.drag(-20, -20, 20, 20)
	h.expectStage(t, StageDrawCircle)
	h.ArmDraw(document.KindCircle)
	h.drag(-20, -20, 20, 20)
	h.expectStage(t, StageCenterCircle)
}

func TestUnitScale(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.UnitScale = 2 })
	h.toDimensioning(t)

	h.Tick(press(0, 25))
	h.submit(t, "60")
	rect, _ := h.Rectangle()
	if rect.Width != 120 {
		t.Errorf("expected applied width 120, got %v", rect.Width)
	}
	if got := h.RectangleEntries(); len(got) != 1 || got[0] != 60 {
		t.Errorf("expected entered value 60 recorded, got %v", got)
	}

	h.Tick(press(-60, 0))
	h.submit(t, "30")
	h.expectStage(t, StageDimensionCircle)
}

func TestConfirmOnlyInAwaitStage(t *testing.T) {
	h := newHarness(t)
	h.Confirm()
	h.expectStage(t, StageDrawRectangle)
	if h.confirm.Activate() {
		t.Error("confirm control should start disabled")
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.toDimensioning(t)
	h.Tick(press(0, 25))

	h.Reset()

	h.expectStage(t, StageDrawRectangle)
	if h.Suspended() || h.prompt.IsOpen() {
		t.Error("reset should close the dialog")
	}
	if _, ok := h.Rectangle(); ok {
		t.Error("reset should clear the rectangle")
	}
	if _, ok := h.Circle(); ok {
		t.Error("reset should clear the circle")
	}
	if h.Progress().Completed() != 0 {
		t.Error("reset should clear progress")
	}
	if len(h.eventsOf(EventShapeDestroyed)) != 2 {
		t.Errorf("expected 2 shape.destroyed events, got %d", len(h.eventsOf(EventShapeDestroyed)))
	}

	h.toDimensioning(t)
}

func TestRenderAndHitTest(t *testing.T) {
	h := newHarness(t)
	h.drag(-60, -30, 60, 30)
	h.drag(0, 0, 0, 0)
	h.Tick(press(-20, -20))
	h.Tick(hold(20, 20))

	var decoded []DrawCommand
	if err := json.Unmarshal([]byte(h.Render()), &decoded); err != nil {
		t.Fatalf("render JSON: %v", err)
	}
	ops := map[string]int{}
	for _, c := range decoded {
		ops[c.Op]++
	}
	if ops["guide"] != 2 || ops["rect"] != 1 || ops["ellipse"] != 1 {
		t.Errorf("unexpected ops %v", ops)
	}
	if last := decoded[len(decoded)-1]; !last.Draft {
		t.Errorf("expected draft drawn last, got %+v", last)
	}

	h.Tick(release(20, 20))
	rect, _ := h.Rectangle()
	circle, _ := h.Circle()
	if got := h.HitTest(0, 0); got != circle.ID {
		t.Errorf("expected circle on top at origin, got %q", got)
	}
	if got := h.HitTest(50, 0); got != rect.ID {
		t.Errorf("expected rectangle at (50,0), got %q", got)
	}
	if got := h.HitTest(500, 0); got != "" {
		t.Errorf("expected no hit, got %q", got)
	}
}

func TestEventJSON(t *testing.T) {
	h := newHarness(t)
	h.drag(-60, -30, 60, 30)

	changed := h.eventsOf(EventStageChanged)
	if len(changed) != 1 {
		t.Fatalf("expected 1 stage change, got %d", len(changed))
	}
	data, err := json.Marshal(changed[0])
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["stage"] != "CenterRectangle" || decoded["from"] != "DrawRectangle" {
		t.Errorf("unexpected stage fields in %s", data)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.GridStep = 0
	cfg.EdgeThickness = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error")
	}
	if _, err := New(cfg, nil, nil); err == nil {
		t.Error("New should reject an invalid config")
	}
}

func TestConfigValidateErrorOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Surface.Width = -3
	cfg.EdgeThickness = -2
	cfg.AxisSnapDistance = -1

	want := "axis snap distance must not be negative, got -1\n" +
		"edge thickness must not be negative, got -2\n" +
		"surface width must not be negative, got -3"
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if err.Error() != want {
			t.Fatalf("expected %q, got %q", want, err.Error())
		}
	}
}

func TestParseStage(t *testing.T) {
	for s := StageDrawRectangle; s <= StageDone; s++ {
		got, err := ParseStage(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStage(%q) = %v, %v", s.String(), got, err)
		}
		if s.Status() == "" {
			t.Errorf("stage %s has no status text", s)
		}
	}
	if _, err := ParseStage("Nope"); err == nil {
		t.Error("expected error for unknown stage")
	}
}
