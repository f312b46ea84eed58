package model

import "time"

// MessageRaw is one row of messages_raw: the inbound message as delivered by
// a connector, before analysis.
type MessageRaw struct {
	ID        int
	UserID    int
	MessageID string
	Subject   string
	FromEmail string
	Body      string
	RawJSON   string
	Status    string
	CreatedAt time.Time
}

// Analysis is one row of message_analyses: the engine's output for a message.
// The full analysis and reply objects are stored as JSON alongside the
// queryable columns.
type Analysis struct {
	ID            int
	MessageRawID  int
	Category      string
	Confidence    float64
	NeedsReview   bool
	Summary       string
	RiskLevel     string
	SecurityScore int
	AnalysisJSON  string
	ReplyJSON     string
	CreatedAt     time.Time
}

// MessageWithAnalysis is the query shape for listing a user's messages with
// whatever analysis exists so far.
type MessageWithAnalysis struct {
	ID          int       `json:"id"`
	Subject     string    `json:"subject"`
	FromEmail   string    `json:"from_email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Category    *string   `json:"category,omitempty"`
	Confidence  *float64  `json:"confidence,omitempty"`
	NeedsReview *bool     `json:"needs_review,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	RiskLevel   *string   `json:"risk_level,omitempty"`
}
