package inbox

import "strings"

// Classifier scores a message against the five categories. It is
// deterministic and never fails: FYI is the universal fallback.
type Classifier struct {
	rules *Rules
}

func NewClassifier(rules *Rules) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the winning category and a confidence in [0.15, 0.98],
// or exactly 0.60 when no signal matched at all.
func (c *Classifier) Classify(email *EmailData) (Category, float64) {
	text := strings.ToLower(email.Subject) + " " + strings.ToLower(email.Body)
	subject := strings.ToLower(email.Subject)
	fromEmail := strings.ToLower(email.FromEmail)

	scores := map[Category]int{
		CategoryMeeting: 0,
		CategoryTask:    0,
		CategoryInvoice: 0,
		CategorySpam:    0,
		CategoryFYI:     0,
	}

	scores[CategoryMeeting] += scoreTiers(c.rules.MeetingPhrases, text)
	scores[CategoryMeeting] += scoreTiers(c.rules.MeetingTimes, text)
	scores[CategoryTask] += scoreTiers(c.rules.TaskPhrases, text)
	scores[CategorySpam] += scoreTiers(c.rules.SpamPhrases, text)

	for _, token := range c.rules.InvoiceTokens {
		if strings.Contains(text, token) {
			scores[CategoryInvoice] += c.rules.InvoiceWeight
		}
	}

	// Social-network invitation spam: known sender domain plus an
	// invitation/connection subject line.
	if containsAny(fromEmail, c.rules.SocialDomains) && containsAny(subject, c.rules.InviteTokens) {
		scores[CategorySpam] += c.rules.SocialBonus
	}

	// Strict maximum over the fixed category order. Equal scores resolve to
	// the earliest category in the order; FYI has no positive signal and only
	// wins the all-zero case.
	best := CategoryFYI
	maxScore := 0
	total := 0
	for _, cat := range categoryOrder {
		s := scores[cat]
		total += s
		if s > maxScore {
			maxScore = s
			best = cat
		}
	}

	if maxScore == 0 {
		return CategoryFYI, 0.60
	}

	// Compress the score ratio into [0.15, 0.98]: a dominant winner lands
	// near 0.98, a narrow win near the floor.
	confidence := (float64(maxScore)/float64(total))*0.85 + 0.15
	if confidence > 0.98 {
		confidence = 0.98
	}
	return best, confidence
}

func scoreTiers(tiers []Tier, text string) int {
	score := 0
	for _, tier := range tiers {
		for _, phrase := range tier.Phrases {
			if strings.Contains(text, phrase) {
				score += tier.Weight
			}
		}
		for _, pattern := range tier.Patterns {
			if pattern.MatchString(text) {
				score += tier.Weight
			}
		}
	}
	return score
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
