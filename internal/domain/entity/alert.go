package entity

import "time"

// AlertKind categorizes an alert event.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
)

// alertDisplayDuration is how long a client should keep the alert visible.
const alertDisplayDuration = 5 * time.Second

// AlertEvent is a transient push notification. It is never persisted;
// ExpiresAt only hints when a client should hide it.
type AlertEvent struct {
	MessageKey string    `json:"messageKey"`
	Message    string    `json:"message"`
	Kind       AlertKind `json:"kind"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// NewAlertEvent builds an alert event stamped with the given instant.
func NewAlertEvent(messageKey, message string, kind AlertKind, now time.Time) AlertEvent {
	return AlertEvent{
		MessageKey: messageKey,
		Message:    message,
		Kind:       kind,
		CreatedAt:  now,
		ExpiresAt:  now.Add(alertDisplayDuration),
	}
}
