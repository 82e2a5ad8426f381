package collab

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/sketchcoach/sketchcoach/internal/session"
)

// SessionLookup finds a live session by ID.
type SessionLookup func(id string) (*session.Session, error)

// TokenValidator returns the session ID a request's token was issued for.
type TokenValidator func(r *http.Request) (string, error)

// Handler upgrades /ws/session/{sessionId} requests and binds the connection
// to the session.
type Handler struct {
	hub            *Hub
	lookup         SessionLookup
	validate       TokenValidator
	originPatterns []string
}

func NewHandler(hub *Hub, lookup SessionLookup, validate TokenValidator, originPatterns []string) *Handler {
	return &Handler{hub: hub, lookup: lookup, validate: validate, originPatterns: originPatterns}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	tokenSession, err := h.validate(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if tokenSession != sessionID {
		http.Error(w, "token not valid for this session", http.StatusForbidden)
		return
	}

	sess, err := h.lookup(sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := NewClient(h.hub, conn, sess, uuid.New().String())
	h.hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
