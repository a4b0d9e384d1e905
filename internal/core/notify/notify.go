// Package notify provides the in-process notification bus and the toast
// lifecycle built on top of it.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient user-visible message. IDs are assigned by the
// bus at emission time and are strictly increasing, so ordering by ID always
// reflects emission order.
type Notification struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}
