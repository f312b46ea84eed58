package scanner

import (
	"reflect"
	"strings"
	"testing"
)

func TestScanPhishing(t *testing.T) {
	result := Scan(
		"URGENT: Your account will be suspended!",
		"Click here to verify your account immediately or lose access forever! Visit http://phishing-site.com/verify now.",
		"security@fake-bank.net",
	)

	// Two phrase hits (-20 each), suspicious sender (-30), one bad URL (-25).
	if result.SecurityScore != 5 {
		t.Errorf("security_score = %d, want 5", result.SecurityScore)
	}
	if result.RiskLevel != RiskCritical {
		t.Errorf("risk_level = %s, want %s", result.RiskLevel, RiskCritical)
	}
	if len(result.Threats) != 4 {
		t.Errorf("threats = %v, want 4 entries", result.Threats)
	}
	// Threat messages carry the bare pattern text, not regex syntax.
	if result.Threats[0] != "Suspicious phrase detected: verify.*account.*immediately" {
		t.Errorf("threat[0] = %q, want the bare pattern text", result.Threats[0])
	}
	for _, threat := range result.Threats {
		if strings.Contains(threat, "(?i)") {
			t.Errorf("threat %q leaks regex flags", threat)
		}
	}
	if result.SuspiciousURLs != 1 {
		t.Errorf("suspicious_urls = %d, want 1", result.SuspiciousURLs)
	}
	want := []string{
		"HIGH RISK: Do not interact with this email",
		"Report as phishing/spam",
		"Block sender if suspicious",
	}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("recommendations = %v, want %v", result.Recommendations, want)
	}
}

func TestScanSensitiveData(t *testing.T) {
	result := Scan(
		"Payment details",
		"Call me at 555-123-4567 or email john@acme.com.",
		"john@acme.com",
	)

	if result.SecurityScore != 70 {
		t.Errorf("security_score = %d, want 70", result.SecurityScore)
	}
	if result.RiskLevel != RiskMedium {
		t.Errorf("risk_level = %s, want %s", result.RiskLevel, RiskMedium)
	}
	if len(result.SensitiveData) != 2 {
		t.Fatalf("sensitive_data = %v, want phone and email findings", result.SensitiveData)
	}
	phone := result.SensitiveData[0]
	if phone.Type != "phone" || phone.Count != 1 || phone.MaskedExamples[0] != "55********67" {
		t.Errorf("phone finding = %+v, want masked 55********67", phone)
	}
	email := result.SensitiveData[1]
	if email.Type != "email" || email.MaskedExamples[0] != "jo*********om" {
		t.Errorf("email finding = %+v, want masked jo*********om", email)
	}
	want := []string{"Handle sensitive data with care", "Ensure secure communication channels"}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("recommendations = %v, want %v", result.Recommendations, want)
	}
}

func TestScanSSNAndCreditCard(t *testing.T) {
	result := Scan(
		"Records",
		"SSN 123-45-6789 and card 4111 1111 1111 1111 on file.",
		"records@company.com",
	)

	types := make([]string, len(result.SensitiveData))
	for i, finding := range result.SensitiveData {
		types[i] = finding.Type
	}
	if !reflect.DeepEqual(types, []string{"ssn", "credit_card"}) {
		t.Fatalf("finding types = %v, want [ssn credit_card]", types)
	}
	if result.SensitiveData[0].MaskedExamples[0] != "12*******89" {
		t.Errorf("masked ssn = %q, want 12*******89", result.SensitiveData[0].MaskedExamples[0])
	}
	if result.SecurityScore != 70 {
		t.Errorf("security_score = %d, want 70", result.SecurityScore)
	}
}

func TestScanSafeEmail(t *testing.T) {
	result := Scan(
		"Team lunch Friday",
		"We are meeting at noon in the cafeteria.",
		"hr@company.com",
	)

	if result.SecurityScore != 100 {
		t.Errorf("security_score = %d, want 100", result.SecurityScore)
	}
	if result.RiskLevel != RiskLow {
		t.Errorf("risk_level = %s, want %s", result.RiskLevel, RiskLow)
	}
	if len(result.Threats) != 0 || len(result.SensitiveData) != 0 || result.SuspiciousURLs != 0 {
		t.Errorf("expected no findings, got %+v", result)
	}
	if !reflect.DeepEqual(result.Recommendations, []string{"Email appears safe to process"}) {
		t.Errorf("recommendations = %v", result.Recommendations)
	}
}

func TestRiskLevelBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{100, RiskLow},
		{80, RiskLow},
		{79, RiskMedium},
		{60, RiskMedium},
		{59, RiskHigh},
		{40, RiskHigh},
		{39, RiskCritical},
		{0, RiskCritical},
	}

	for _, tt := range tests {
		if got := riskLevel(tt.score); got != tt.want {
			t.Errorf("riskLevel(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abcd", "****"},
		{"abcde", "ab*de"},
		{"555-123-4567", "55********67"},
	}

	for _, tt := range tests {
		if got := mask(tt.in); got != tt.want {
			t.Errorf("mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
