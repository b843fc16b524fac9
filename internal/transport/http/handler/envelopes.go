package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-inventory-agent/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NotificationsEnvelope wraps notification history responses.
type NotificationsEnvelope struct {
	Notifications []domain.Notification `json:"notifications"`
	Count         int                   `json:"count"`
	Status        string                `json:"status"`
}

// MonitorEnvelope wraps monitoring lifecycle and status responses.
type MonitorEnvelope struct {
	Running         bool   `json:"running"`
	IntervalSeconds int    `json:"interval_seconds"`
	Message         string `json:"message,omitempty"`
}

// CheckEnvelope wraps the result of an on-demand inventory check.
type CheckEnvelope struct {
	NotificationsAdded int    `json:"notifications_added"`
	Status             string `json:"status"`
}

// ChatEnvelope wraps assistant responses.
type ChatEnvelope struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeDomainError maps sentinel domain errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
