package session

import (
	"errors"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sketchcoach/sketchcoach/internal/control"
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

var ErrNoAnswerExpected = errors.New("no answer expected")

// tutorial adapts the engine to App.
type tutorial struct {
	*engine.Engine
}

func (tutorial) Name() string { return "sketch" }

// Session is one user's tutorial run. All methods are safe for concurrent use;
// the engine only ever runs under the session lock.
type Session struct {
	ID string

	mu       sync.Mutex
	ctx      *Context
	engine   *engine.Engine
	prompt   *dialog.Prompt
	confirm  *control.Button
	canvas   *pointer.Canvas
	screen   *pointer.ScreenSource
	ray      *pointer.RaySource
	gate     *AnswerGate
	scenario *Scenario
}

func newSession(id string, cfg engine.Config, followupAnswer string) (*Session, error) {
	s := &Session{
		ID:      id,
		ctx:     &Context{ID: id, StartedAt: time.Now()},
		prompt:  dialog.NewPrompt(),
		confirm: control.NewButton("Dimensions"),
		canvas:  pointer.NewCanvas(mgl64.Ident4()),
	}

	eng, err := engine.New(cfg, s.prompt, s.confirm)
	if err != nil {
		return nil, err
	}
	s.engine = eng

	if !cfg.Surface.IsEmpty() {
		s.canvas.ClipTo(cfg.Surface)
	}
	s.screen = pointer.NewScreenSource(pointer.Viewport{PixelsPerUnit: 1})
	s.screen.ClipTo(s.canvas)
	s.ray = pointer.NewRaySource(s.canvas)

	apps := []App{tutorial{eng}}
	if followupAnswer != "" {
		s.gate = NewAnswerGate(followupAnswer)
		apps = append(apps, s.gate)
	}
	s.scenario = NewScenario(s.ctx, apps...)
	return s, nil
}

// Subscribe forwards engine events to fn. fn runs with the session locked and
// must not call back into the session.
func (s *Session) Subscribe(fn func(engine.Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unsub := s.engine.Subscribe(fn)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		unsub()
	}
}

// PointScreen feeds a screen-space pointer sample and runs one tick.
func (s *Session) PointScreen(x, y float64, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Feed(x, y, down)
	s.tick(s.screen)
}

// PointRay feeds a controller ray sample and runs one tick.
func (s *Session) PointRay(origin, dir [3]float64, trigger bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ray.Feed(mgl64.Vec3(origin), mgl64.Vec3(dir), trigger)
	s.tick(s.ray)
}

func (s *Session) tick(src pointer.Source) {
	s.engine.Tick(src.Poll())
	s.scenario.Advance()
}

// SetViewport changes how screen positions map onto the canvas.
func (s *Session) SetViewport(v pointer.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetViewport(v)
}

// Confirm activates the confirm control. It reports whether it was enabled.
func (s *Session) Confirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirm.Activate()
}

// ArmDraw arms drawing of kind.
func (s *Session) ArmDraw(kind document.ShapeKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ArmDraw(kind)
}

// SubmitDimension enters text into the open dimension dialog.
func (s *Session) SubmitDimension(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prompt.Submit(text); err != nil {
		return err
	}
	s.scenario.Advance()
	return nil
}

// CancelDimension dismisses the open dimension dialog.
func (s *Session) CancelDimension() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt.Cancel()
}

// SubmitAnswer answers the follow-up question once the sketch is done.
func (s *Session) SubmitAnswer(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate == nil || s.scenario.Current() != App(s.gate) {
		return "", ErrNoAnswerExpected
	}
	return s.gate.Submit(text)
}

// Reset restarts the whole scenario.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenario.Reset()
}

// Render returns the current draw commands as JSON.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Render()
}

// State is the JSON view of a session.
type State struct {
	ID         string          `json:"id"`
	Context    Context         `json:"context"`
	Apps       []string        `json:"apps"`
	CurrentApp string          `json:"currentApp"`
	Finished   bool            `json:"finished"`
	Engine     engine.State    `json:"engine"`
	DialogOpen bool            `json:"dialogOpen"`
	Dialog     *dialog.Request `json:"dialog,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:         s.ID,
		Context:    *s.ctx,
		Apps:       s.scenario.Names(),
		CurrentApp: s.scenario.Current().Name(),
		Finished:   s.scenario.Finished(),
		Engine:     s.engine.Snapshot(),
		DialogOpen: s.prompt.IsOpen(),
	}
	st.Context.Completed = append([]string(nil), s.ctx.Completed...)
	if req, ok := s.prompt.Current(); ok {
		st.Dialog = &req
	}
	return st
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Close()
}
