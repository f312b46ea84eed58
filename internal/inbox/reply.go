package inbox

import (
	"fmt"
	"strconv"
)

const unsubscribeConfirmation = "Please confirm my removal from your mailing list."

// DraftReply produces the advisory reply for a classified message. The
// subject always echoes the original with a "Re: " prefix and
// SendRecommended is always false: sending requires human approval.
func DraftReply(rules *Rules, email *EmailData, category Category, entities EntityBag) ReplyDraft {
	var body string

	switch {
	case category == CategoryTask:
		body = taskReply(entities)
	case category == CategoryMeeting:
		body = meetingReply(entities)
	case category == CategoryInvoice:
		body = invoiceReply(entities)
	case category == CategorySpam && rules.HasOptOut(email.Body):
		body = unsubscribeConfirmation
	default:
		body = "Thank you for the information. I'll review and follow up if needed."
	}

	return ReplyDraft{
		Subject:         "Re: " + email.Subject,
		Body:            body,
		SendRecommended: false,
	}
}

func taskReply(entities EntityBag) string {
	if entities.DueDate != nil {
		title := stringOr(entities.TaskTitle, "your request")
		return fmt.Sprintf("I've noted the task: %s. I'll complete this by %s and update you on progress.", title, *entities.DueDate)
	}
	title := stringOr(entities.TaskTitle, "the task")
	return fmt.Sprintf("I've received your request regarding %s. Could you please clarify the expected timeline or deadline?", title)
}

func meetingReply(entities EntityBag) string {
	if entities.MeetingStart != nil {
		return "The proposed time works for me. I'll send a calendar invite with the meeting details. Please confirm the attendee list and any specific agenda items."
	}
	return "I'd be happy to meet. Could you please suggest a few time slots that work for you? I'm generally available weekdays 9 AM - 5 PM."
}

func invoiceReply(entities EntityBag) string {
	if entities.InvoiceTotal != nil {
		amount := strconv.FormatFloat(*entities.InvoiceTotal, 'f', 2, 64)
		return fmt.Sprintf("I've received the invoice for %s %s. I'll process this and arrange payment according to our terms.", stringOr(entities.Currency, ""), amount)
	}
	return "I've received your invoice. Could you please clarify the total amount due and payment terms?"
}

func stringOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
