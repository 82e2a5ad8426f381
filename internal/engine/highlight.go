package engine

import "github.com/sketchcoach/sketchcoach/internal/geometry"

// Highlight colors as CSS hex RGBA.
const (
	ColorNone   = ""
	ColorHover  = "#ff9900cc"
	ColorSelect = "#00ff4de6"
	ColorAxis   = "#4d99ffd9"
)

type HighlightTarget string

const (
	TargetEdge  HighlightTarget = "edge"
	TargetAxisX HighlightTarget = "axisX"
	TargetAxisY HighlightTarget = "axisY"
)

// Highlight tells the renderer to tint an edge or axis guide. An empty Color
// clears it.
type Highlight struct {
	Target HighlightTarget `json:"target"`
	Edge   geometry.Edge   `json:"edge,omitempty"`
	Color  string          `json:"color"`
}

type highlights struct {
	edge      geometry.Edge
	edgeColor string
	axisX     bool
	axisY     bool
}

// setEdgeHighlight tints edge with color, clearing any other edge first.
// Nothing is emitted when the state is unchanged.
func (e *Engine) setEdgeHighlight(edge geometry.Edge, color string) {
	if edge == geometry.EdgeNone {
		color = ColorNone
	}
	h := &e.highlights
	if h.edge == edge && h.edgeColor == color {
		return
	}
	if h.edge != geometry.EdgeNone && h.edge != edge {
		e.emit(Event{Type: EventHighlight, Highlight: &Highlight{Target: TargetEdge, Edge: h.edge}})
	}
	h.edge, h.edgeColor = edge, color
	if edge != geometry.EdgeNone {
		e.emit(Event{Type: EventHighlight, Highlight: &Highlight{Target: TargetEdge, Edge: edge, Color: color}})
	}
}

func (e *Engine) clearEdgeHighlight() {
	e.setEdgeHighlight(geometry.EdgeNone, ColorNone)
}

// setAxisHighlights reflects axis-snap state. Only changes are emitted.
func (e *Engine) setAxisHighlights(x, y bool) {
	h := &e.highlights
	if h.axisX != x {
		h.axisX = x
		e.emit(Event{Type: EventHighlight, Highlight: axisHighlight(TargetAxisX, x)})
	}
	if h.axisY != y {
		h.axisY = y
		e.emit(Event{Type: EventHighlight, Highlight: axisHighlight(TargetAxisY, y)})
	}
}

func (e *Engine) clearAxisHighlights() {
	e.setAxisHighlights(false, false)
}

func axisHighlight(target HighlightTarget, on bool) *Highlight {
	h := &Highlight{Target: target}
	if on {
		h.Color = ColorAxis
	}
	return h
}
