package engine

import (
	"encoding/json"

	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

// DrawCommand is a single drawing operation for the renderer. Coordinates are
// canvas-local; X and Y are the center of the primitive.
type DrawCommand struct {
	Op          string  `json:"op"`                    // Operation: "rect", "ellipse", "guide", "edge"
	ObjectID    string  `json:"objectId,omitempty"`    // For hit correlation
	X           float64 `json:"x"`                     // Center x
	Y           float64 `json:"y"`                     // Center y
	Width       float64 `json:"width"`                 // Full width
	Height      float64 `json:"height"`                // Full height
	Axis        string  `json:"axis,omitempty"`        // "x" or "y" for guides
	Edge        string  `json:"edge,omitempty"`        // Edge name for "edge" ops
	Fill        string  `json:"fill,omitempty"`        // Fill color
	Stroke      string  `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64 `json:"strokeWidth,omitempty"` // Stroke width
	Opacity     float64 `json:"opacity,omitempty"`     // Global alpha
	Draft       bool    `json:"draft,omitempty"`       // Shape still being drawn
}

const (
	shapeStroke = "#222222"
	guideStroke = "#00000033"
	surfaceFill = "#ffffff"
)

// Commands returns the draw commands for the current state in painter's order
// (back to front).
func (e *Engine) Commands() []DrawCommand {
	if e.dirty || e.commands == nil {
		e.commands = e.compile()
		e.dirty = false
	}
	return e.commands
}

func (e *Engine) compile() []DrawCommand {
	commands := []DrawCommand{}

	if e.cfg.hasSurface() {
		commands = append(commands, rectCommand("surface", e.cfg.Surface, surfaceFill, guideStroke))
	}
	commands = append(commands,
		e.guideCommand("x", e.highlights.axisX),
		e.guideCommand("y", e.highlights.axisY),
	)

	if rect, ok := e.registry.Rectangle(); ok {
		commands = append(commands, shapeCommand(rect, 1))
		if h := e.highlights; h.edge != geometry.EdgeNone && int(h.edge) <= len(rect.Children) {
			strip := rect.Children[h.edge-1]
			strip.Center = strip.Center.Add(rect.Center)
			cmd := rectCommand(rect.ID, strip, h.edgeColor, "")
			cmd.Op = "edge"
			cmd.Edge = h.edge.String()
			commands = append(commands, cmd)
		}
	}
	if circle, ok := e.registry.Circle(); ok {
		commands = append(commands, shapeCommand(circle, 1))
	}
	if e.draft != nil {
		cmd := shapeCommand(*e.draft, 0.5)
		cmd.Draft = true
		commands = append(commands, cmd)
	}
	return commands
}

func (e *Engine) guideCommand(axis string, highlighted bool) DrawCommand {
	extent := 1e4
	if e.cfg.hasSurface() {
		extent = e.cfg.Surface.Width
		if axis == "y" {
			extent = e.cfg.Surface.Height
		}
	}
	cmd := DrawCommand{Op: "guide", Axis: axis, Stroke: guideStroke, StrokeWidth: 1}
	if axis == "x" {
		cmd.Width = extent
	} else {
		cmd.Height = extent
	}
	if highlighted {
		cmd.Stroke = ColorAxis
		cmd.StrokeWidth = 2
	}
	return cmd
}

func shapeCommand(s document.Shape, opacity float64) DrawCommand {
	op := "rect"
	if s.Kind == document.KindCircle {
		op = "ellipse"
	}
	return DrawCommand{
		Op:          op,
		ObjectID:    s.ID,
		X:           s.Center.X,
		Y:           s.Center.Y,
		Width:       s.Width,
		Height:      s.Height,
		Stroke:      shapeStroke,
		StrokeWidth: 2,
		Opacity:     opacity,
	}
}

func rectCommand(id string, r geometry.Rect, fill, stroke string) DrawCommand {
	return DrawCommand{
		Op:       "rect",
		ObjectID: id,
		X:        r.Center.X,
		Y:        r.Center.Y,
		Width:    r.Width,
		Height:   r.Height,
		Fill:     fill,
		Stroke:   stroke,
		Opacity:  1,
	}
}

// Render returns the draw commands as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(e.Commands())
	return result
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// HitTest returns the ID of the shape under the canvas-local point, or "".
// The circle sits on top of the rectangle and is tested first.
func (e *Engine) HitTest(x, y float64) string {
	p := geometry.V(x, y)
	if circle, ok := e.registry.Circle(); ok && circle.Contains(p) {
		return circle.ID
	}
	if rect, ok := e.registry.Rectangle(); ok && rect.Contains(p) {
		return rect.ID
	}
	return ""
}
