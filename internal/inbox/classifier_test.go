package inbox

import (
	"math"
	"testing"
)

func TestClassifyMeeting(t *testing.T) {
	email := &EmailData{
		Subject:   "Sync on Tue 11:00 IST",
		FromName:  "Rahul",
		FromEmail: "rahul@acme.com",
		Body:      "Hi, can we have a 30-min sync on Tuesday at 11:00 IST to discuss Q3 deliverables? I'll send a Google Meet link.",
	}

	category, confidence := NewClassifier(nil).Classify(email)
	if category != CategoryMeeting {
		t.Fatalf("category = %s, want %s", category, CategoryMeeting)
	}
	// Meeting: "sync" (20) + "tuesday" (8); Task: "send" (12).
	want := (28.0/40.0)*0.85 + 0.15
	if math.Abs(confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", confidence, want)
	}
}

func TestClassifyTask(t *testing.T) {
	email := &EmailData{
		Subject:   "Please approve budget proposal",
		FromEmail: "finance@company.com",
		Body:      "Please review and approve the attached budget proposal by Friday. Need your signature on the final document.",
	}

	category, confidence := NewClassifier(nil).Classify(email)
	if category != CategoryTask {
		t.Fatalf("category = %s, want %s", category, CategoryTask)
	}
	if confidence < 0.60 {
		t.Errorf("confidence = %v, want >= 0.60 for a dominant task signal", confidence)
	}
}

func TestClassifyInvoice(t *testing.T) {
	email := &EmailData{
		Subject:   "Invoice #INV-2024-1123",
		FromEmail: "billing@techvendor.com",
		Body:      "Attached invoice #INV-2024-1123 for software licenses. Total amount: $2,500.00. Payment due in 30 days.",
	}

	category, _ := NewClassifier(nil).Classify(email)
	if category != CategoryInvoice {
		t.Fatalf("category = %s, want %s", category, CategoryInvoice)
	}
}

func TestClassifySpamWithOptOut(t *testing.T) {
	email := &EmailData{
		Subject:   "Exclusive discount inside",
		FromEmail: "promo@shop.example",
		Body:      "Huge discount on all products. Click here to claim your gift. Reply unsubscribe to stop emails.",
	}

	category, confidence := NewClassifier(nil).Classify(email)
	if category != CategorySpam {
		t.Fatalf("category = %s, want %s", category, CategorySpam)
	}
	// Spam is the only scoring category, so confidence clamps at the cap.
	if confidence != 0.98 {
		t.Errorf("confidence = %v, want 0.98", confidence)
	}
}

func TestClassifySocialInvitationSpam(t *testing.T) {
	email := &EmailData{
		Subject:   "New invitation waiting for you",
		FromEmail: "invitations@linkedin.com",
		Body:      "",
	}

	category, _ := NewClassifier(nil).Classify(email)
	if category != CategorySpam {
		t.Fatalf("category = %s, want %s", category, CategorySpam)
	}
}

func TestClassifyZeroSignalFallsBackToFYI(t *testing.T) {
	email := &EmailData{
		Subject:   "Hello",
		FromEmail: "pm@company.com",
		Body:      "Nothing much going this quarter.",
	}

	category, confidence := NewClassifier(nil).Classify(email)
	if category != CategoryFYI {
		t.Fatalf("category = %s, want %s", category, CategoryFYI)
	}
	if confidence != 0.60 {
		t.Errorf("confidence = %v, want exactly 0.60 for zero signal", confidence)
	}
}

func TestClassifyTieResolvesByCategoryOrder(t *testing.T) {
	// "sync" scores Meeting 20 and "please" scores Task 20; the earlier
	// category in the fixed evaluation order wins the tie.
	email := &EmailData{
		Subject: "",
		Body:    "please sync",
	}

	category, confidence := NewClassifier(nil).Classify(email)
	if category != CategoryMeeting {
		t.Fatalf("category = %s, want %s (tie resolves to earliest)", category, CategoryMeeting)
	}
	want := 0.5*0.85 + 0.15
	if math.Abs(confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", confidence, want)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	fixtures := []EmailData{
		{Subject: "Sync on Tue 11:00 IST", Body: "Tuesday at 11:00 IST works, I'll send a Zoom link."},
		{Subject: "Please approve budget proposal", Body: "Please review and approve by Friday."},
		{Subject: "Invoice #42", Body: "Total: $99.00, payment due on receipt."},
		{Subject: "You have won", Body: "Click here to claim your free prize. Unsubscribe anytime."},
		{Subject: "Hello", Body: "Quiet quarter."},
		{Subject: "", Body: ""},
		{Subject: "Meeting tomorrow at 9:00 am", Body: "Conference room, please come prepared. $ amounts attached. Free offer."},
	}

	classifier := NewClassifier(nil)
	for _, fixture := range fixtures {
		_, confidence := classifier.Classify(&fixture)
		if confidence == 0.60 {
			continue
		}
		if confidence < 0.15 || confidence > 0.98 {
			t.Errorf("confidence %v out of [0.15, 0.98] for subject %q", confidence, fixture.Subject)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	email := &EmailData{
		Subject: "Meeting tomorrow at 9:00 am",
		Body:    "Please join the sync call, need your update on the invoice #123.",
	}

	classifier := NewClassifier(nil)
	firstCategory, firstConfidence := classifier.Classify(email)
	for i := 0; i < 10; i++ {
		category, confidence := classifier.Classify(email)
		if category != firstCategory || confidence != firstConfidence {
			t.Fatalf("run %d: got (%s, %v), want (%s, %v)", i, category, confidence, firstCategory, firstConfidence)
		}
	}
}
