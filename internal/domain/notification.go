package domain

import (
	"fmt"
	"time"
)

// Notification types, in priority order: warnings are surfaced before alerts,
// alerts before infos.
const (
	NotificationWarning = "warning"
	NotificationAlert   = "alert"
	NotificationInfo    = "info"
)

// Notification is an operational signal produced by a monitoring check.
// Immutable once stored. NotificationID is empty until the store assigns the
// deduplication key at merge time.
type Notification struct {
	NotificationID string    `json:"id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	ProductID      string    `json:"product_id,omitempty"` // empty for general notices
}

// DedupKey builds the deterministic identity key for a notification generated
// on the given day. The key deliberately collides for repeated alerts of the
// same type and product within one calendar day.
func (n Notification) DedupKey(day time.Time) string {
	productID := n.ProductID
	if productID == "" {
		productID = "general"
	}
	return fmt.Sprintf("%s_%s_%s", n.Type, productID, day.Format("2006-01-02"))
}

// Priority returns the sort rank of the notification type.
func (n Notification) Priority() int {
	switch n.Type {
	case NotificationWarning:
		return 0
	case NotificationAlert:
		return 1
	default:
		return 2
	}
}
