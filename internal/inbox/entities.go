package inbox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	subjectPrefixRe = regexp.MustCompile(`(?i)^(re:|fwd?:)\s*`)
	dueDateRes      = []*regexp.Regexp{
		regexp.MustCompile(`(?i)by (\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)due (\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)before (\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	}
	clockTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)
	amountRe    = regexp.MustCompile(`(?i)(?:total|amount|due|balance)[\s:]*([₹$€£]?)\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	vendorRe    = regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+?)(?:\s|$|\.)`)
	poNumberRe  = regexp.MustCompile(`(?i)(?:po|purchase order)[\s#:]*([a-z0-9-]+)`)
)

var currencySymbols = map[string]string{
	"₹": "INR",
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

var locationKeywords = []string{"zoom", "teams", "meet", "room", "office", "location"}

var imperativeCues = []string{"please", "need", "request", "can you"}

// Extractor pulls category-specific structured facts out of a message.
// Parsing failures always degrade to nil fields, never to errors.
//
// The meeting-time path stamps extracted clock times onto the current
// calendar date, so it is the one time-dependent piece of the engine. The
// clock is injectable to keep that path testable.
type Extractor struct {
	now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorAt returns an extractor anchored to a fixed clock.
func NewExtractorAt(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Extract returns a fully-shaped EntityBag for the message. Fields irrelevant
// to category stay nil; Timezone is always copied from the message.
func (x *Extractor) Extract(email *EmailData, category Category) EntityBag {
	bag := EntityBag{
		Timezone:              email.RecipientTimezone,
		Attendees:             []string{},
		AttachmentsOfInterest: []string{},
	}

	switch category {
	case CategoryTask:
		bag.TaskTitle = extractTaskTitle(email)
		bag.TaskDetails = truncatePtr(email.Body, 200)
		bag.DueDate = extractDueDate(email.Body)

	case CategoryMeeting:
		bag.MeetingStart, bag.MeetingEnd = x.extractMeetingTimes(email)
		bag.Attendees = []string{email.FromEmail}
		bag.Location = extractLocation(email.Body)

	case CategoryInvoice:
		bag.InvoiceTotal, bag.Currency, bag.Vendor, bag.PONumber = extractInvoiceData(email)
		bag.AttachmentsOfInterest = invoiceAttachments(email.Attachments)
	}

	return bag
}

// extractTaskTitle prefers the cleaned subject line, falling back to the first
// imperative sentence of the body.
func extractTaskTitle(email *EmailData) *string {
	subject := strings.TrimSpace(subjectPrefixRe.ReplaceAllString(email.Subject, ""))
	if subject != "" && utf8.RuneCountInString(subject) < 100 {
		return &subject
	}

	sentences := strings.Split(email.Body, ".")
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		lower := strings.ToLower(sentence)
		for _, cue := range imperativeCues {
			if strings.Contains(lower, cue) {
				return truncatePtr(sentence, 80)
			}
		}
	}
	return nil
}

// extractDueDate finds the first "by/due/before <date>" occurrence and
// normalizes it to YYYY-MM-DD. Unparsable dates degrade to nil.
func extractDueDate(body string) *string {
	for _, re := range dueDateRes {
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if iso := parseDateString(m[1]); iso != nil {
			return iso
		}
	}
	return nil
}

// parseDateString converts a slash or dash delimited M/D/Y date to ISO form.
// Two-digit years are assumed to be 20xx.
func parseDateString(dateStr string) *string {
	sep := "/"
	if !strings.Contains(dateStr, sep) {
		sep = "-"
	}
	parts := strings.Split(dateStr, sep)
	if len(parts) != 3 {
		return nil
	}
	month, day, year := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	iso := fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
	return &iso
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// extractMeetingTimes scans the body for up to two clock times. Two matches
// become start and end; one match is the start with no end (consumers infer a
// default duration); zero matches leave both nil.
func (x *Extractor) extractMeetingTimes(email *EmailData) (start, end *string) {
	body := strings.ToLower(email.Body)
	times := clockTimeRe.FindAllStringSubmatch(body, -1)

	if len(times) >= 2 {
		return x.formatMeetingTime(times[0], email), x.formatMeetingTime(times[1], email)
	}
	if len(times) == 1 {
		return x.formatMeetingTime(times[0], email), nil
	}
	return nil, nil
}

// formatMeetingTime converts a matched clock time to 24-hour ISO form stamped
// on the current calendar date. When the message carries a recipient timezone
// a fixed +05:30 offset is appended regardless of the actual zone; this is a
// known limitation carried over from the original behavior, not a general
// timezone converter.
func (x *Extractor) formatMeetingTime(match []string, email *EmailData) *string {
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}

	ampm := match[3]
	if ampm == "pm" && hour != 12 {
		hour += 12
	} else if ampm == "am" && hour == 12 {
		hour = 0
	}

	stamp := fmt.Sprintf("%sT%02d:%02d:00", x.now().Format("2006-01-02"), hour, minute)
	if email.RecipientTimezone != nil {
		stamp += "+05:30"
	}
	return &stamp
}

// extractLocation returns the first ~50 characters of the first sentence
// mentioning a location keyword.
func extractLocation(body string) *string {
	lower := strings.ToLower(body)
	for _, keyword := range locationKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, sentence := range strings.Split(body, ".") {
			if strings.Contains(strings.ToLower(sentence), keyword) {
				loc := strings.TrimSpace(sentence)
				if runes := []rune(loc); len(runes) > 50 {
					loc = string(runes[:50])
				}
				return &loc
			}
		}
	}
	return nil
}

// extractInvoiceData prefers attachment text over the body: the first
// attachment whose text yields a total wins.
func extractInvoiceData(email *EmailData) (total *float64, currency, vendor, poNumber *string) {
	for _, attachment := range email.Attachments {
		if attachment.Text == nil {
			continue
		}
		total, currency, vendor, poNumber = parseInvoiceText(*attachment.Text)
		if total != nil {
			return total, currency, vendor, poNumber
		}
	}
	return parseInvoiceText(email.Body)
}

func parseInvoiceText(text string) (total *float64, currency, vendor, poNumber *string) {
	if m := amountRe.FindStringSubmatch(text); m != nil {
		amountStr := strings.ReplaceAll(m[2], ",", "")
		if amount, err := strconv.ParseFloat(amountStr, 64); err == nil {
			total = &amount
			code := "USD"
			if mapped, ok := currencySymbols[m[1]]; ok && m[1] != "" {
				code = mapped
			}
			currency = &code
		}
	}

	vendor = extractVendor(text)

	if m := poNumberRe.FindStringSubmatch(text); m != nil {
		po := m[1]
		poNumber = &po
	}

	return total, currency, vendor, poNumber
}

// extractVendor matches a "from <name>" sequence between 3 and 50 characters.
func extractVendor(text string) *string {
	m := vendorRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	vendor := strings.TrimSpace(m[1])
	if len(vendor) > 3 && len(vendor) < 50 {
		return &vendor
	}
	return nil
}

// invoiceAttachments returns filenames that look like billing documents.
func invoiceAttachments(attachments []Attachment) []string {
	files := []string{}
	for _, attachment := range attachments {
		name := strings.ToLower(attachment.Filename)
		switch {
		case strings.Contains(name, "invoice"), strings.Contains(name, "bill"):
			files = append(files, attachment.Filename)
		case attachment.Mime == "application/pdf", attachment.Mime == "image/png", attachment.Mime == "image/jpeg":
			files = append(files, attachment.Filename)
		}
	}
	return files
}

// truncatePtr returns s truncated to limit characters with an ellipsis marker,
// as a pointer. Limits count runes, not bytes, so a cut never splits a
// multi-byte character.
func truncatePtr(s string, limit int) *string {
	if runes := []rune(s); len(runes) > limit {
		s = string(runes[:limit]) + "..."
	}
	return &s
}
