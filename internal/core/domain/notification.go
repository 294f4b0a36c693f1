package domain

import "time"

// NotificationKind selects the styling of a notification
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

func (k NotificationKind) String() string {
	if k == NotifySuccess {
		return "success"
	}
	return "error"
}

// Notification is a transient message about the outcome of an operation
type Notification struct {
	Kind    NotificationKind
	Message string
	At      time.Time
}

// NewSuccess creates a success notification stamped with the current time
func NewSuccess(msg string) Notification {
	return Notification{Kind: NotifySuccess, Message: msg, At: time.Now()}
}

// NewError creates an error notification stamped with the current time
func NewError(msg string) Notification {
	return Notification{Kind: NotifyError, Message: msg, At: time.Now()}
}

// Expired reports whether the notification is older than ttl
func (n Notification) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.At) >= ttl
}
