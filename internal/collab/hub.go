package collab

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
	"github.com/sketchcoach/sketchcoach/internal/session"
)

// Hub binds at most one client to each session. A newer connection for a
// session replaces the older one.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*Client // sessionID -> client
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
	}
}

// Run processes registrations until Stop is called. On stop every connected
// client is closed.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.stop:
			h.mu.Lock()
			clients := h.clients
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
			for _, c := range clients {
				c.detach()
				c.close()
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stop:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stop:
	}
}

// Client returns the client bound to sessionID.
func (h *Hub) Client(sessionID string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[sessionID]
	return c, ok
}

// Disconnect closes the client bound to sessionID, if any.
func (h *Hub) Disconnect(sessionID string) {
	if c, ok := h.Client(sessionID); ok {
		h.Unregister(c)
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	previous := h.clients[client.SessionID]
	h.clients[client.SessionID] = client
	h.mu.Unlock()

	if previous != nil {
		previous.detach()
		previous.close()
		slog.Info("client replaced", "session", client.SessionID, "previous", previous.ClientID)
	}

	// Events flow from the moment the welcome is queued.
	client.attach()
	client.sendMessage(TypeWelcome, WelcomePayload{
		SessionID: client.SessionID,
		ClientID:  client.ClientID,
		State:     client.session.State(),
	})

	slog.Info("client joined", "session", client.SessionID, "client", client.ClientID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if h.clients[client.SessionID] == client {
		delete(h.clients, client.SessionID)
	}
	h.mu.Unlock()

	client.detach()
	client.close()

	slog.Info("client left", "session", client.SessionID, "client", client.ClientID)
}

// handleMessage applies one client message to the client's session. Input
// messages run exactly one engine tick.
func (h *Hub) handleMessage(sender *Client, msg *Message) {
	sess := sender.session

	switch msg.Type {
	case TypeInputScreen:
		var p ScreenInputPayload
		if !decode(sender, msg, &p) {
			return
		}
		sess.PointScreen(p.X, p.Y, p.Down)

	case TypeInputRay:
		var p RayInputPayload
		if !decode(sender, msg, &p) {
			return
		}
		sess.PointRay(p.Origin, p.Direction, p.Trigger)

	case TypeCanvasViewport:
		var p ViewportPayload
		if !decode(sender, msg, &p) {
			return
		}
		if p.PixelsPerUnit <= 0 {
			sender.sendError("pixelsPerUnit must be positive")
			return
		}
		sess.SetViewport(pointer.Viewport{CenterX: p.CenterX, CenterY: p.CenterY, PixelsPerUnit: p.PixelsPerUnit})

	case TypeStageConfirm:
		sess.Confirm()
		sender.sendState()

	case TypeDrawArm:
		var p DrawArmPayload
		if !decode(sender, msg, &p) {
			return
		}
		if !sess.ArmDraw(document.ShapeKind(p.Kind)) {
			sender.sendError("cannot arm " + p.Kind + " in the current stage")
			return
		}
		sender.sendState()

	case TypeDialogSubmit:
		var p TextPayload
		if !decode(sender, msg, &p) {
			return
		}
		if err := sess.SubmitDimension(p.Text); err != nil {
			if errors.Is(err, dialog.ErrNotOpen) {
				sender.sendError(err.Error())
				return
			}
			sender.sendMessage(TypeDialogInvalid, DialogInvalidPayload{Error: err.Error()})
		}

	case TypeDialogCancel:
		if err := sess.CancelDimension(); err != nil {
			sender.sendError(err.Error())
		}

	case TypeAnswerSubmit:
		var p TextPayload
		if !decode(sender, msg, &p) {
			return
		}
		hint, err := sess.SubmitAnswer(p.Text)
		if errors.Is(err, session.ErrNoAnswerExpected) {
			sender.sendError(err.Error())
			return
		}
		sender.sendMessage(TypeAnswerResult, AnswerResultPayload{OK: err == nil, Hint: hint})
		sender.sendState()

	case TypeSessionReset:
		sess.Reset()
		sender.sendState()

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", sender.SessionID)
		sender.sendError("unknown message type " + msg.Type)
	}
}

func decode(sender *Client, msg *Message, v interface{}) bool {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		slog.Warn("invalid payload", "type", msg.Type, "error", err)
		sender.sendError("invalid " + msg.Type + " payload")
		return false
	}
	return true
}

func eventMessage(ev engine.Event) (*Message, error) {
	return NewMessage(TypeEngineEvent, ev)
}
