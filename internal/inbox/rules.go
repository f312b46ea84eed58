package inbox

import (
	"regexp"
	"strings"
)

// Tier is one weighted band of signals. Phrases are matched as lower-case
// substrings of subject+body; Patterns are matched as regexes over the same
// text. Every hit in a tier contributes the tier's weight, with no cap.
type Tier struct {
	Weight   int
	Phrases  []string
	Patterns []*regexp.Regexp
}

// Rules is the declarative configuration the classifier scores against. It is
// data, not control flow: swapping or extending the tables never touches the
// scoring loop.
type Rules struct {
	MeetingPhrases []Tier
	MeetingTimes   []Tier
	TaskPhrases    []Tier
	SpamPhrases    []Tier

	// InvoiceTokens score a flat InvoiceWeight per matching token.
	InvoiceTokens []string
	InvoiceWeight int

	// Social-network invitation spam: sender domain token + subject token.
	SocialDomains []string
	InviteTokens  []string
	SocialBonus   int

	OptOutTerms []string
}

// DefaultRules returns the standard rule set.
func DefaultRules() *Rules {
	return &Rules{
		MeetingPhrases: []Tier{
			{Weight: 30, Phrases: []string{"meeting at", "call at", "zoom at", "teams meeting", "scheduled for"}},
			{Weight: 20, Phrases: []string{"meeting", "call", "sync", "discussion", "appointment"}},
			{Weight: 10, Phrases: []string{"catch up", "demo", "presentation", "review"}},
		},
		MeetingTimes: []Tier{
			{Weight: 25, Patterns: []*regexp.Regexp{
				regexp.MustCompile(`\d{1,2}:\d{2}\s*(am|pm)`),
				regexp.MustCompile(`tomorrow at \d`),
				regexp.MustCompile(`today at \d`),
			}},
			{Weight: 15,
				Phrases:  []string{"tomorrow", "today", "next week"},
				Patterns: []*regexp.Regexp{regexp.MustCompile(`\d{1,2}\s*(am|pm)`)},
			},
			{Weight: 8, Phrases: []string{"monday", "tuesday", "wednesday", "thursday", "friday"}},
		},
		TaskPhrases: []Tier{
			{Weight: 35, Phrases: []string{"please review", "need approval", "action required", "urgent request"}},
			{Weight: 20, Phrases: []string{"please", "need", "request", "approve", "complete"}},
			{Weight: 12, Phrases: []string{"update", "send", "provide", "finish"}},
		},
		SpamPhrases: []Tier{
			{Weight: 40, Phrases: []string{"click here to claim", "you have won", "congratulations winner"}},
			{Weight: 25, Phrases: []string{"unsubscribe", "marketing", "promotion", "offer"}},
			{Weight: 15, Phrases: []string{"deal", "discount", "free"}},
		},
		InvoiceTokens: []string{"invoice #", "payment due", "amount due", "bill", "$"},
		InvoiceWeight: 20,
		SocialDomains: []string{"linkedin", "facebook", "twitter"},
		InviteTokens:  []string{"invitation", "connection"},
		SocialBonus:   35,
		OptOutTerms:   []string{"unsubscribe", "opt out", "remove me", "stop emails"},
	}
}

// HasOptOut reports whether text contains opt-out language.
func (r *Rules) HasOptOut(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range r.OptOutTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
