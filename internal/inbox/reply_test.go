package inbox

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDraftReplySubjectAndRecommendation(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Subject: "Quarterly update", Body: "FYI only."}

	for _, category := range []Category{CategoryTask, CategoryMeeting, CategoryInvoice, CategorySpam, CategoryFYI} {
		reply := DraftReply(rules, email, category, EntityBag{})
		if reply.Subject != "Re: Quarterly update" {
			t.Errorf("category %s: subject = %q, want %q", category, reply.Subject, "Re: Quarterly update")
		}
		if reply.SendRecommended {
			t.Errorf("category %s: send_recommended = true, must always be false", category)
		}
	}
}

func TestDraftReplyTaskWithDueDate(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Subject: "Approve budget", Body: "Please approve by 9/30/25."}
	entities := EntityBag{TaskTitle: strPtr("Approve budget"), DueDate: strPtr("2025-09-30")}

	reply := DraftReply(rules, email, CategoryTask, entities)

	if !strings.Contains(reply.Body, "Approve budget") || !strings.Contains(reply.Body, "2025-09-30") {
		t.Errorf("body = %q, want task title and due date echoed", reply.Body)
	}
}

func TestDraftReplyTaskWithoutDueDateAsksForTimeline(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Subject: "Approve budget", Body: "Please approve."}

	reply := DraftReply(rules, email, CategoryTask, EntityBag{})

	if !strings.Contains(reply.Body, "clarify the expected timeline") {
		t.Errorf("body = %q, want timeline clarification request", reply.Body)
	}
	if !strings.Contains(reply.Body, "the task") {
		t.Errorf("body = %q, want fallback title %q", reply.Body, "the task")
	}
}

func TestDraftReplyMeeting(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Subject: "Sync", Body: "2:00 pm work for you?"}

	withTime := DraftReply(rules, email, CategoryMeeting, EntityBag{MeetingStart: strPtr("2025-08-25T14:00:00")})
	if !strings.Contains(withTime.Body, "The proposed time works for me") {
		t.Errorf("body = %q, want acceptance of the proposed time", withTime.Body)
	}

	withoutTime := DraftReply(rules, email, CategoryMeeting, EntityBag{})
	if !strings.Contains(withoutTime.Body, "suggest a few time slots") {
		t.Errorf("body = %q, want a request for time slots", withoutTime.Body)
	}
}

func TestDraftReplyInvoice(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Subject: "Invoice #42", Body: "Total: $2,500.00"}
	total := 2500.0

	withTotal := DraftReply(rules, email, CategoryInvoice, EntityBag{InvoiceTotal: &total, Currency: strPtr("USD")})
	if !strings.Contains(withTotal.Body, "USD 2500.00") {
		t.Errorf("body = %q, want formatted amount %q", withTotal.Body, "USD 2500.00")
	}

	withoutTotal := DraftReply(rules, email, CategoryInvoice, EntityBag{})
	if !strings.Contains(withoutTotal.Body, "clarify the total amount due") {
		t.Errorf("body = %q, want amount clarification request", withoutTotal.Body)
	}
}

func TestDraftReplySpam(t *testing.T) {
	rules := DefaultRules()

	optOut := DraftReply(rules, &EmailData{Subject: "Deals", Body: "Reply unsubscribe to stop."}, CategorySpam, EntityBag{})
	if optOut.Body != unsubscribeConfirmation {
		t.Errorf("body = %q, want unsubscribe confirmation", optOut.Body)
	}

	plain := DraftReply(rules, &EmailData{Subject: "Deals", Body: "Huge discount!"}, CategorySpam, EntityBag{})
	if !strings.Contains(plain.Body, "Thank you for the information") {
		t.Errorf("body = %q, want the generic acknowledgement", plain.Body)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		email    EmailData
		category Category
		want     string
	}{
		{
			name:     "task with display name",
			email:    EmailData{FromName: "Priya", FromEmail: "priya@acme.com", Subject: "Approve budget"},
			category: CategoryTask,
			want:     "Priya requests action regarding 'Approve budget'.",
		},
		{
			name:     "local part fallback",
			email:    EmailData{FromEmail: "billing@vendor.com", Subject: "Invoice #42"},
			category: CategoryInvoice,
			want:     "billing sent an invoice or payment request.",
		},
		{
			name:     "long subject excerpt",
			email:    EmailData{FromName: "Sam", Subject: strings.Repeat("s", 60)},
			category: CategoryFYI,
			want:     "Sam shared information about '" + strings.Repeat("s", 50) + "...'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(&tt.email, tt.category); got != tt.want {
				t.Errorf("Summarize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeExcerptCountsRunes(t *testing.T) {
	// The excerpt boundary lands between characters, never inside one.
	email := &EmailData{
		FromName: "Priya",
		Subject:  strings.Repeat("a", 48) + "₹₹₹",
	}

	got := Summarize(email, CategoryFYI)

	want := "Priya shared information about '" + strings.Repeat("a", 48) + "₹₹...'."
	if got != want {
		t.Errorf("Summarize = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Error("summary is not valid UTF-8")
	}
}
