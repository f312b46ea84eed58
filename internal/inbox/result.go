package inbox

// Category is one of the five fixed classification outcomes.
type Category string

const (
	CategoryTask    Category = "Task"
	CategoryMeeting Category = "Meeting"
	CategoryInvoice Category = "Invoice"
	CategorySpam    Category = "Spam"
	CategoryFYI     Category = "FYI"
)

// categoryOrder is the fixed evaluation order for scoring. The classifier
// resolves ties by taking the earliest strict maximum in this order.
var categoryOrder = []Category{
	CategoryMeeting,
	CategoryTask,
	CategoryInvoice,
	CategorySpam,
	CategoryFYI,
}

// EntityBag holds the structured facts extracted from a message. The shape is
// always fully populated: fields irrelevant to the winning category stay nil
// (or empty for the list fields) so consumers never need a type test.
type EntityBag struct {
	TaskTitle   *string `json:"task_title"`
	TaskDetails *string `json:"task_details"`
	DueDate     *string `json:"due_date"`

	MeetingStart *string  `json:"meeting_start"`
	MeetingEnd   *string  `json:"meeting_end"`
	Timezone     *string  `json:"timezone"`
	Attendees    []string `json:"attendees"`
	Location     *string  `json:"location"`

	InvoiceTotal *float64 `json:"invoice_total"`
	Currency     *string  `json:"currency"`
	Vendor       *string  `json:"vendor"`
	PONumber     *string  `json:"po_number"`

	AttachmentsOfInterest []string `json:"attachments_of_interest"`
}

// AnalysisResult is the analysis record produced for one message.
type AnalysisResult struct {
	Classification Category  `json:"classification"`
	Confidence     float64   `json:"confidence"`
	NeedsReview    bool      `json:"needs_review"`
	Summary        string    `json:"summary"`
	Entities       EntityBag `json:"entities"`
	NextActions    []string  `json:"next_actions"`
	Labels         []string  `json:"labels"`
	Reason         string    `json:"reason"`
}

// ReplyDraft is a proposed reply. SendRecommended is always false: drafts are
// advisory and require human approval before anything is sent.
type ReplyDraft struct {
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	SendRecommended bool   `json:"send_recommended"`
}
