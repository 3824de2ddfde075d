// Package diag broadcasts permission-denied events on a process-wide
// channel for developer visibility. Emission never blocks: if nobody is
// draining the channel, events are logged and dropped.
package diag

import (
	"log"
	"time"
)

// PermissionEvent describes a refused read/write or navigation attempt.
type PermissionEvent struct {
	Path      string
	Operation string
	UserID    uint
	At        time.Time
}

var events = make(chan PermissionEvent, 64)

// EmitPermissionDenied records a refusal and offers it to subscribers.
func EmitPermissionDenied(path, operation string, userID uint) {
	ev := PermissionEvent{Path: path, Operation: operation, UserID: userID, At: time.Now()}
	log.Printf("diag: permission denied: user=%d op=%s path=%s", userID, operation, path)
	select {
	case events <- ev:
	default:
	}
}

// Events exposes the diagnostic stream.
func Events() <-chan PermissionEvent {
	return events
}
