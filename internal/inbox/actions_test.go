package inbox

import (
	"reflect"
	"strings"
	"testing"
)

func TestPlanActionsPerCategory(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name        string
		category    Category
		body        string
		wantActions []string
		wantLabels  []string
	}{
		{
			name:        "task",
			category:    CategoryTask,
			body:        "Please approve the budget.",
			wantActions: []string{ActionLabelEmail, ActionCreateTask, ActionDraftReply},
			wantLabels:  []string{"AI/Task"},
		},
		{
			name:        "meeting",
			category:    CategoryMeeting,
			body:        "Sync tomorrow at 11:00?",
			wantActions: []string{ActionLabelEmail, ActionCreateEvent, ActionDraftReply},
			wantLabels:  []string{"AI/Meeting"},
		},
		{
			name:        "invoice",
			category:    CategoryInvoice,
			body:        "Total: $99.00",
			wantActions: []string{ActionLabelEmail, ActionFileInvoice, ActionDraftReply},
			wantLabels:  []string{"AI/Invoice"},
		},
		{
			name:        "fyi",
			category:    CategoryFYI,
			body:        "Quarterly numbers attached for reference.",
			wantActions: []string{ActionLabelEmail, ActionDraftReply},
			wantLabels:  []string{"AI/FYI"},
		},
		{
			name:        "spam without opt-out",
			category:    CategorySpam,
			body:        "Huge discount, click here to claim!",
			wantActions: []string{ActionLabelEmail},
			wantLabels:  []string{"AI/Spam"},
		},
		{
			name:        "spam with opt-out",
			category:    CategorySpam,
			body:        "Huge discount! Reply unsubscribe to stop emails.",
			wantActions: []string{ActionLabelEmail},
			wantLabels:  []string{"AI/Spam", LabelOptOut},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &EmailData{Body: tt.body}
			actions, labels := PlanActions(rules, tt.category, email)
			if !reflect.DeepEqual(actions, tt.wantActions) {
				t.Errorf("actions = %v, want %v", actions, tt.wantActions)
			}
			if !reflect.DeepEqual(labels, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", labels, tt.wantLabels)
			}
		})
	}
}

func TestPlanActionsSingleAILabel(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Body: "please unsubscribe me from everything"}

	for _, category := range []Category{CategoryTask, CategoryMeeting, CategoryInvoice, CategorySpam, CategoryFYI} {
		_, labels := PlanActions(rules, category, email)
		count := 0
		for _, label := range labels {
			if strings.HasPrefix(label, "AI/") {
				count++
			}
		}
		if count != 1 {
			t.Errorf("category %s: %d AI/ labels, want exactly 1", category, count)
		}
	}
}

func TestPlanActionsOptOutLabelOnNonSpam(t *testing.T) {
	rules := DefaultRules()
	email := &EmailData{Body: "Please remove me from this thread, and approve the budget."}

	actions, labels := PlanActions(rules, CategoryTask, email)

	if !reflect.DeepEqual(labels, []string{"AI/Task", LabelOptOut}) {
		t.Errorf("labels = %v, want opt-out appended", labels)
	}
	if !reflect.DeepEqual(actions, []string{ActionLabelEmail, ActionCreateTask, ActionDraftReply}) {
		t.Errorf("actions = %v, opt-out must not change non-spam actions", actions)
	}
}
