package model

import "time"

// AuditEntry records one processing event for a message.
type AuditEntry struct {
	ID           int
	UserID       int
	MessageRawID int
	Event        string
	CreatedAt    time.Time
}
