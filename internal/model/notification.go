package model

import (
	"time"
)

// AudienceAll is the sentinel Notification.UserID meaning the notification
// is visible to every employee and the administrator.
const AudienceAll = "all"

// Notification is a one-way, read-tracked message produced as a side effect
// of task creation and deletion. Once written, only IsRead ever changes.
type Notification struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
	RelatedTaskID *string   `json:"relatedTaskId,omitempty"`
}

// VisibleTo reports whether the notification should be shown to the given user.
func (n Notification) VisibleTo(userID string) bool {
	return n.UserID == AudienceAll || n.UserID == userID
}
