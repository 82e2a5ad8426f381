package collab

import (
	"encoding/json"

	"github.com/sketchcoach/sketchcoach/internal/session"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Client -> server
const (
	TypeInputScreen    = "input.screen"
	TypeCanvasViewport = "canvas.viewport"
	TypeInputRay       = "input.ray"
	TypeStageConfirm   = "stage.confirm"
	TypeDrawArm        = "draw.arm"
	TypeDialogSubmit   = "dialog.submit"
	TypeDialogCancel   = "dialog.cancel"
	TypeAnswerSubmit   = "answer.submit"
	TypeSessionReset   = "session.reset"
)

// Server -> client
const (
	TypeWelcome       = "welcome"
	TypeEngineEvent   = "engine.event"
	TypeDialogInvalid = "dialog.invalid"
	TypeAnswerResult  = "answer.result"
	TypeSessionState  = "session.state"
	TypeError         = "error"
)

type ScreenInputPayload struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Down bool    `json:"down"`
}

type ViewportPayload struct {
	CenterX       float64 `json:"centerX"`
	CenterY       float64 `json:"centerY"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

type RayInputPayload struct {
	Origin    [3]float64 `json:"origin"`
	Direction [3]float64 `json:"direction"`
	Trigger   bool       `json:"trigger"`
}

type DrawArmPayload struct {
	Kind string `json:"kind"`
}

type TextPayload struct {
	Text string `json:"text"`
}

type WelcomePayload struct {
	SessionID string        `json:"sessionId"`
	ClientID  string        `json:"clientId"`
	State     session.State `json:"state"`
}

type DialogInvalidPayload struct {
	Error string `json:"error"`
}

type AnswerResultPayload struct {
	OK   bool   `json:"ok"`
	Hint string `json:"hint,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(typ string, payload interface{}) (*Message, error) {
	msg := &Message{Type: typ}
	if payload == nil {
		return msg, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg.Payload = data
	return msg, nil
}
