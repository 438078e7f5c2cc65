package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notifications-api/internal/application/inbox"
	"github.com/notifications-api/internal/domain"
)

// Envelope is the generic response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreatedEnvelope wraps the create response with the server-generated id.
type CreatedEnvelope struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ListEnvelope wraps inbox listing responses.
type ListEnvelope struct {
	Success bool              `json:"success"`
	Data    *inbox.ListResult `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Success: false, Error: msg})
}

// httpError maps domain sentinel errors to status codes. Anything that isn't
// a validation or not-found error is an opaque storage failure.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
