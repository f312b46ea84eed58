package inbox

// Action tokens consumed by the surrounding connectors.
const (
	ActionLabelEmail  = "label_email"
	ActionCreateTask  = "create_task"
	ActionCreateEvent = "create_event"
	ActionFileInvoice = "file_invoice"
	ActionDraftReply  = "draft_reply"
)

// LabelOptOut is appended whenever the body carries opt-out language.
const LabelOptOut = "Opt-Out"

// PlanActions maps a category and the message's opt-out signal to an ordered,
// duplicate-free action list and a label set. Every label set carries exactly
// one AI/<category> entry.
func PlanActions(rules *Rules, category Category, email *EmailData) (actions, labels []string) {
	actions = []string{ActionLabelEmail}
	labels = []string{"AI/" + string(category)}

	optOut := rules.HasOptOut(email.Body)
	if optOut {
		labels = append(labels, LabelOptOut)
	}

	switch category {
	case CategoryTask:
		actions = append(actions, ActionCreateTask, ActionDraftReply)
	case CategoryMeeting:
		actions = append(actions, ActionCreateEvent, ActionDraftReply)
	case CategoryInvoice:
		actions = append(actions, ActionFileInvoice, ActionDraftReply)
	case CategoryFYI:
		actions = append(actions, ActionDraftReply)
	case CategorySpam:
		// No reply is offered for spam unless the sender must confirm an
		// opt-out, in which case the base actions stand and the reply body
		// becomes an unsubscribe confirmation.
		if !optOut {
			actions = []string{ActionLabelEmail}
		}
	}

	return actions, labels
}
