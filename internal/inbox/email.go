package inbox

// Attachment is a single attachment on an inbound message. Text carries
// extracted text content when the connector was able to produce it.
type Attachment struct {
	Filename string  `json:"filename"`
	Mime     string  `json:"mime"`
	Text     *string `json:"text"`
}

// EmailData is the immutable input record for one inbound message. All string
// fields default to empty rather than absent; Attachments may be empty.
type EmailData struct {
	MessageID         string       `json:"message_id"`
	Subject           string       `json:"subject"`
	FromName          string       `json:"from_name"`
	FromEmail         string       `json:"from_email"`
	ToEmail           string       `json:"to_email"`
	CCEmails          string       `json:"cc_emails"`
	Date              string       `json:"date"`
	RecipientTimezone *string      `json:"recipient_timezone"`
	MessageLink       *string      `json:"message_link"`
	Body              string       `json:"body"`
	Attachments       []Attachment `json:"attachments"`
}
