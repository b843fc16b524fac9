package handler

import (
	"net/http"
	"strconv"

	"github.com/go-inventory-agent/internal/domain"
)

const defaultNotificationLimit = 20

type notificationHistory interface {
	Recent(limit int) []domain.Notification
}

// NotificationHandler serves the bounded notification history.
type NotificationHandler struct {
	history notificationHistory
}

func NewNotificationHandler(history notificationHistory) *NotificationHandler {
	return &NotificationHandler{history: history}
}

// List returns the most recent notifications, newest first. The limit query
// parameter caps the result; it defaults to 20.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultNotificationLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	notifications := h.history.Recent(limit)
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, NotificationsEnvelope{
		Notifications: notifications,
		Count:         len(notifications),
		Status:        "ok",
	})
}
