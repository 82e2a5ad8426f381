package auth

import (
	"encoding/json"
	"net/http"
)

// QueryTokenValidator checks the ?token= parameter used by websocket clients,
// which cannot set headers from the browser.
func (s *Service) QueryTokenValidator(r *http.Request) (string, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		return "", ErrInvalidToken
	}
	return s.ValidateToken(token)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
