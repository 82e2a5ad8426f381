package session

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

var ErrWrongAnswer = errors.New("wrong answer")

// Context is the explicit per-session state shared by the apps of a scenario.
type Context struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"`
	StartedAt time.Time `json:"startedAt"`
	Completed []string  `json:"completed"`
}

// App is one step of a scenario.
type App interface {
	Name() string
	Done() bool
	Reset()
}

// Scenario runs its apps in order. It moves on only when the current app is done.
type Scenario struct {
	ctx  *Context
	apps []App
}

func NewScenario(ctx *Context, apps ...App) *Scenario {
	return &Scenario{ctx: ctx, apps: apps}
}

// Current returns the active app, or nil for an empty scenario.
func (s *Scenario) Current() App {
	if len(s.apps) == 0 {
		return nil
	}
	return s.apps[s.ctx.Index]
}

// Advance moves past the current app if it is done and is not the last one.
// It reports whether the index changed.
func (s *Scenario) Advance() bool {
	cur := s.Current()
	if cur == nil || !cur.Done() || s.ctx.Index == len(s.apps)-1 {
		return false
	}
	s.ctx.Completed = append(s.ctx.Completed, cur.Name())
	s.ctx.Index++
	slog.Info("scenario advanced", "session", s.ctx.ID, "from", cur.Name(), "to", s.Current().Name())
	return true
}

// Finished reports whether the last app is done.
func (s *Scenario) Finished() bool {
	if len(s.apps) == 0 {
		return true
	}
	return s.ctx.Index == len(s.apps)-1 && s.apps[s.ctx.Index].Done()
}

// Reset resets every app and returns to the first.
func (s *Scenario) Reset() {
	for _, app := range s.apps {
		app.Reset()
	}
	s.ctx.Index = 0
	s.ctx.Completed = nil
}

// Names lists the apps in order.
func (s *Scenario) Names() []string {
	names := make([]string, len(s.apps))
	for i, app := range s.apps {
		names[i] = app.Name()
	}
	return names
}

// AnswerGate is a follow-up app that completes when the expected answer is
// submitted.
type AnswerGate struct {
	expected string
	hint     string
	done     bool
}

func NewAnswerGate(expected string) *AnswerGate {
	return &AnswerGate{expected: strings.TrimSpace(expected), hint: "Incorrect size entered"}
}

func (g *AnswerGate) Name() string { return "answer" }
func (g *AnswerGate) Done() bool   { return g.done }
func (g *AnswerGate) Reset()       { g.done = false }

// Submit checks text against the expected answer. On a wrong answer it returns
// ErrWrongAnswer and the hint to show in place of the input.
func (g *AnswerGate) Submit(text string) (hint string, err error) {
	if strings.TrimSpace(text) != g.expected {
		return g.hint, ErrWrongAnswer
	}
	g.done = true
	return "", nil
}
