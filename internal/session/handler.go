package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sketchcoach/sketchcoach/internal/auth"
)

// TokenIssuer signs access tokens for new sessions.
type TokenIssuer interface {
	Issue(sessionID string) (string, error)
}

type Handler struct {
	service *Service
	tokens  TokenIssuer
}

func NewHandler(service *Service, tokens TokenIssuer) *Handler {
	return &Handler{service: service, tokens: tokens}
}

type createResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	State State  `json:"state"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Create()
	if err != nil {
		slog.Error("create session failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	token, err := h.tokens.Issue(sess.ID)
	if err != nil {
		slog.Error("issue session token failed", "error", err)
		_ = h.service.Delete(sess.ID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{ID: sess.ID, Token: token, State: sess.State()})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.authorized(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sess.State())
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.authorized(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sess.Reset()
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, err := h.authorized(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.service.Delete(sess.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorized loads the session named in the path and checks it against the
// session the caller's token was issued for.
func (h *Handler) authorized(r *http.Request) (*Session, error) {
	sessionID := mux.Vars(r)["sessionId"]
	if auth.SessionIDFromContext(r.Context()) != sessionID {
		return nil, ErrForbidden
	}
	return h.service.Get(sessionID)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	default:
		slog.Error("service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
