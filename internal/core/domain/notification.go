package domain

import "time"

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
)

func (t NotificationType) Valid() bool {
	return t == NotificationInfo || t == NotificationWarning || t == NotificationSuccess
}

// Notification is the observable side effect of a command.
type Notification struct {
	ID         string           `json:"id"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	Date       time.Time        `json:"date"`
	Read       bool             `json:"read"`
	TargetRole MemberRole       `json:"targetRole,omitempty"`
}

// VisibleTo reports whether a user holding role should see the notification.
// Managers see everything; members only untargeted or member-targeted notes.
func (n Notification) VisibleTo(role MemberRole) bool {
	if role.IsManager() {
		return true
	}
	return n.TargetRole == "" || n.TargetRole == role
}
