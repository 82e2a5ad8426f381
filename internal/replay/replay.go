// Package replay drives an engine from a recorded script instead of a live
// pointer. Scripts are JSON lists of steps.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sketchcoach/sketchcoach/internal/control"
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

var (
	ErrUnknownStep = errors.New("unknown step")
	ErrExpectation = errors.New("expectation failed")
)

const (
	ActionPointer   = "pointer"
	ActionConfirm   = "confirm"
	ActionArm       = "arm"
	ActionDimension = "dimension"
	ActionCancel    = "cancel"
	ActionReset     = "reset"
	ActionExpect    = "expect"
)

// Step is one scripted input. Action defaults to "pointer".
type Step struct {
	Action string `json:"action,omitempty"`

	// pointer
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Down       bool    `json:"down,omitempty"`
	NoPosition bool    `json:"noPosition,omitempty"`

	// arm
	Kind string `json:"kind,omitempty"`

	// dimension
	Text string `json:"text,omitempty"`

	// expect
	Stage string `json:"stage,omitempty"`
}

type Script struct {
	Name  string `json:"name,omitempty"`
	Steps []Step `json:"steps"`
}

// Load decodes a script.
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// Result summarizes a run.
type Result struct {
	Stage    engine.Stage    `json:"stage"`
	Done     bool            `json:"done"`
	Progress engine.Progress `json:"progress"`
	Steps    int             `json:"steps"`
	Rejected []string        `json:"rejected,omitempty"`
	Events   []engine.Event  `json:"events"`
	State    engine.State    `json:"state"`
}

// Runner owns one engine and feeds it script steps.
type Runner struct {
	engine  *engine.Engine
	prompt  *dialog.Prompt
	confirm *control.Button
	button  pointer.Button
	events  []engine.Event
	unsub   func()
}

func NewRunner(cfg engine.Config) (*Runner, error) {
	r := &Runner{
		prompt:  dialog.NewPrompt(),
		confirm: control.NewButton("Dimensions"),
	}
	eng, err := engine.New(cfg, r.prompt, r.confirm)
	if err != nil {
		return nil, err
	}
	r.engine = eng
	r.unsub = eng.Subscribe(func(ev engine.Event) { r.events = append(r.events, ev) })
	return r, nil
}

func (r *Runner) Engine() *engine.Engine {
	return r.engine
}

func (r *Runner) Close() {
	r.unsub()
	r.engine.Close()
}

// Run applies every step in order. It stops at the first failing step or when
// ctx is done. Invalid dimension text is recorded in Result.Rejected and the
// dialog stays open, the same as for a user.
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	var rejected []string
	start := len(r.events)

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return r.result(i, start, rejected), err
		}

		text, err := r.apply(step)
		if errors.Is(err, dimensionRejected) {
			rejected = append(rejected, text)
			continue
		}
		if err != nil {
			return r.result(i, start, rejected), fmt.Errorf("step %d: %w", i, err)
		}
	}

	res := r.result(len(s.Steps), start, rejected)
	slog.Info("replay finished", "script", s.Name, "steps", res.Steps, "stage", res.Stage, "done", res.Done)
	return res, nil
}

var dimensionRejected = errors.New("dimension rejected")

func (r *Runner) apply(step Step) (string, error) {
	switch step.Action {
	case "", ActionPointer:
		r.engine.Tick(r.sample(step))
	case ActionConfirm:
		r.confirm.Activate()
	case ActionArm:
		if !r.engine.ArmDraw(document.ShapeKind(step.Kind)) {
			return "", fmt.Errorf("cannot arm %q in %s", step.Kind, r.engine.Stage())
		}
	case ActionDimension:
		if err := r.prompt.Submit(step.Text); err != nil {
			if errors.Is(err, dialog.ErrNotOpen) {
				return "", err
			}
			return step.Text, dimensionRejected
		}
	case ActionCancel:
		return "", r.prompt.Cancel()
	case ActionReset:
		r.engine.Reset()
	case ActionExpect:
		want, err := engine.ParseStage(step.Stage)
		if err != nil {
			return "", err
		}
		if got := r.engine.Stage(); got != want {
			return "", fmt.Errorf("%w: expected stage %s, got %s", ErrExpectation, want, got)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, step.Action)
	}
	return "", nil
}

func (r *Runner) sample(step Step) pointer.Sample {
	pressed, released := r.button.Update(step.Down)
	s := pointer.Sample{Pressed: pressed, Held: step.Down, Released: released}
	if step.NoPosition {
		return s
	}
	return s.At(geometry.V(step.X, step.Y))
}

func (r *Runner) result(steps, start int, rejected []string) Result {
	events := make([]engine.Event, len(r.events)-start)
	copy(events, r.events[start:])
	return Result{
		Stage:    r.engine.Stage(),
		Done:     r.engine.Done(),
		Progress: r.engine.Progress(),
		Steps:    steps,
		Rejected: rejected,
		Events:   events,
		State:    r.engine.Snapshot(),
	}
}
