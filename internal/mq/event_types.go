package mq

import (
	"time"

	"actioninbox/internal/inbox"
)

// MessageReceivedPayload carries the complete inbound message so the workers
// can analyze it without a second round trip to the connector.
type MessageReceivedPayload struct {
	MessageRawID int             `json:"message_raw_id"`
	UserID       int             `json:"user_id"`
	Message      inbox.EmailData `json:"message"`
	ReceivedAt   time.Time       `json:"received_at"`
}
