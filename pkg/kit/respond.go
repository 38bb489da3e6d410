package kit

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

// WriteDecodeError maps a body decoding failure to its 4xx response.
func WriteDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		WriteError(w, r, http.StatusRequestEntityTooLarge, "body too large", map[string]any{"limit": tooLarge.Limit})
	case errors.Is(err, ErrEmptyBody):
		WriteError(w, r, http.StatusBadRequest, "empty body", nil)
	case errors.Is(err, ErrNotObject):
		WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": "expected a json object"})
	default:
		WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
	}
}
