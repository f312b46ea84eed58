// Package scanner flags threats and sensitive data in inbound messages with a
// static regex rule set. Like the analysis engine it is pure and never fails.
package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// RiskLevel buckets the security score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Finding is one detected sensitive-data type with masked examples.
type Finding struct {
	Type           string   `json:"type"`
	Count          int      `json:"count"`
	MaskedExamples []string `json:"masked_examples"`
}

// Result is the outcome of scanning one message. SecurityScore starts at 100
// and loses points per detection, floored at 0.
type Result struct {
	SecurityScore   int       `json:"security_score"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Threats         []string  `json:"threats"`
	SensitiveData   []Finding `json:"sensitive_data"`
	SuspiciousURLs  int       `json:"suspicious_urls"`
	Recommendations []string  `json:"recommendations"`
}

var maliciousPatterns = []struct {
	text string
	re   *regexp.Regexp
}{
	{`click here to claim`, regexp.MustCompile(`(?i)click here to claim`)},
	{`urgent.*action.*required`, regexp.MustCompile(`(?i)urgent.*action.*required`)},
	{`verify.*account.*immediately`, regexp.MustCompile(`(?i)verify.*account.*immediately`)},
	{`suspended.*account`, regexp.MustCompile(`(?i)suspended.*account`)},
	{`winner.*lottery`, regexp.MustCompile(`(?i)winner.*lottery`)},
	{`inheritance.*million`, regexp.MustCompile(`(?i)inheritance.*million`)},
	{`bitcoin.*investment`, regexp.MustCompile(`(?i)bitcoin.*investment`)},
	{`crypto.*opportunity`, regexp.MustCompile(`(?i)crypto.*opportunity`)},
}

var sensitivePatterns = []struct {
	dataType string
	re       *regexp.Regexp
}{
	{"ssn", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{"credit_card", regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)},
	{"phone", regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
	{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"password", regexp.MustCompile(`(?i)password[\s:=]+\w+`)},
	{"api_key", regexp.MustCompile(`(?i)(api[_-]?key|token)[\s:=]+[a-zA-Z0-9_-]+`)},
	{"bank_account", regexp.MustCompile(`\b\d{8,12}\b`)},
}

var suspiciousDomains = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co",
	"phishing-site.com", "fake-bank.net", "scam-alert.org",
}

var urlPattern = regexp.MustCompile(`https?://[A-Za-z0-9$\-_@.&+!*(),%]+`)

// Scan runs the full security scan over subject, body and sender address.
func Scan(subject, body, senderEmail string) Result {
	text := strings.ToLower(subject + " " + body)

	threats := []string{}
	sensitive := []Finding{}
	score := 100

	for _, pattern := range maliciousPatterns {
		if pattern.re.MatchString(text) {
			threats = append(threats, fmt.Sprintf("Suspicious phrase detected: %s", pattern.text))
			score -= 20
		}
	}

	full := subject + " " + body
	for _, sp := range sensitivePatterns {
		matches := sp.re.FindAllString(full, -1)
		if len(matches) == 0 {
			continue
		}
		examples := matches
		if len(examples) > 2 {
			examples = examples[:2]
		}
		masked := make([]string, len(examples))
		for i, m := range examples {
			masked[i] = mask(m)
		}
		sensitive = append(sensitive, Finding{
			Type:           sp.dataType,
			Count:          len(matches),
			MaskedExamples: masked,
		})
		score -= 15
	}

	if domain := senderDomain(senderEmail); domain != "" {
		for _, suspicious := range suspiciousDomains {
			if domain == suspicious {
				threats = append(threats, fmt.Sprintf("Suspicious sender domain: %s", domain))
				score -= 30
				break
			}
		}
	}

	suspiciousURLs := 0
	for _, url := range urlPattern.FindAllString(body, -1) {
		for _, domain := range suspiciousDomains {
			if strings.Contains(url, domain) {
				suspiciousURLs++
				score -= 25
				break
			}
		}
	}
	if suspiciousURLs > 0 {
		threats = append(threats, fmt.Sprintf("Suspicious URLs detected: %d links", suspiciousURLs))
	}

	if score < 0 {
		score = 0
	}

	return Result{
		SecurityScore:   score,
		RiskLevel:       riskLevel(score),
		Threats:         threats,
		SensitiveData:   sensitive,
		SuspiciousURLs:  suspiciousURLs,
		Recommendations: recommendations(score, threats, sensitive),
	}
}

func riskLevel(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	case score >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

func senderDomain(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return ""
}

// mask hides the middle of a sensitive value, keeping two characters at each
// end for recognition.
func mask(data string) string {
	if len(data) <= 4 {
		return strings.Repeat("*", len(data))
	}
	return data[:2] + strings.Repeat("*", len(data)-4) + data[len(data)-2:]
}

func recommendations(score int, threats []string, sensitive []Finding) []string {
	recs := []string{}

	if score < 50 {
		recs = append(recs, "HIGH RISK: Do not interact with this email", "Report as phishing/spam")
	} else if score < 70 {
		recs = append(recs, "CAUTION: Verify sender before taking action", "Check URLs before clicking")
	}
	if len(threats) > 0 {
		recs = append(recs, "Block sender if suspicious")
	}
	if len(sensitive) > 0 {
		recs = append(recs, "Handle sensitive data with care", "Ensure secure communication channels")
	}
	if len(recs) == 0 {
		recs = append(recs, "Email appears safe to process")
	}
	return recs
}
