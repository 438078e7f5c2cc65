package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/notifications-api/internal/application/inbox"
	"github.com/notifications-api/internal/domain"
)

// InboxHandler handles the notification endpoints.
type InboxHandler struct {
	svc inbox.Service
}

func NewInboxHandler(svc inbox.Service) *InboxHandler {
	return &InboxHandler{svc: svc}
}

func (h *InboxHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbox.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedEnvelope{Success: true, ID: n.ID})
}

func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	skip, limit := parseListParams(r)

	res, err := h.svc.List(r.Context(), userID, skip, limit)
	if err != nil {
		// An unknown user is a soft failure on this endpoint, not a 404.
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, ListEnvelope{Success: false, Error: "User not found"})
			return
		}
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListEnvelope{Success: true, Data: res})
}

func (h *InboxHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	notificationID := q.Get("notification_id")
	if userID == "" || notificationID == "" {
		writeError(w, http.StatusBadRequest, "user_id and notification_id are required")
		return
	}
	if err := h.svc.MarkAsRead(r.Context(), userID, notificationID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true})
}

// parseListParams reads skip/limit from the query string. Missing or
// malformed values come back as zero; the service clamps them to defaults.
func parseListParams(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return
}
