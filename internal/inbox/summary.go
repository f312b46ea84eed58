package inbox

import (
	"fmt"
	"strings"
)

// Summarize builds a one-sentence summary naming the sender and a subject
// excerpt. The display name wins; the local part of the address is the
// fallback.
func Summarize(email *EmailData, category Category) string {
	sender := email.FromName
	if sender == "" {
		sender = strings.SplitN(email.FromEmail, "@", 2)[0]
	}

	subject := email.Subject
	if runes := []rune(subject); len(runes) > 50 {
		subject = string(runes[:50]) + "..."
	}

	switch category {
	case CategoryTask:
		return fmt.Sprintf("%s requests action regarding '%s'.", sender, subject)
	case CategoryMeeting:
		return fmt.Sprintf("%s proposes a meeting about '%s'.", sender, subject)
	case CategoryInvoice:
		return fmt.Sprintf("%s sent an invoice or payment request.", sender)
	case CategorySpam:
		return fmt.Sprintf("Marketing/promotional email from %s.", sender)
	default:
		return fmt.Sprintf("%s shared information about '%s'.", sender, subject)
	}
}

// ReasonFor returns the fixed explanatory string for a classification. The
// table is static: there is no per-message variation.
func ReasonFor(category Category) string {
	switch category {
	case CategoryTask:
		return "Contains action-oriented language and requests"
	case CategoryMeeting:
		return "Contains scheduling or meeting-related content"
	case CategoryInvoice:
		return "Contains payment or billing information"
	case CategorySpam:
		return "Contains marketing content or opt-out language"
	default:
		return "Informational content with no clear action required"
	}
}
