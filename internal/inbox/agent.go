package inbox

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Agent is the analysis engine: one synchronous, in-memory pass from a
// message to an analysis record and a reply draft. It holds no state between
// calls and is safe to share across any number of workers.
type Agent struct {
	rules      *Rules
	classifier *Classifier
	extractor  *Extractor
	logger     *zap.Logger
}

func NewAgent(logger *zap.Logger) *Agent {
	rules := DefaultRules()
	return &Agent{
		rules:      rules,
		classifier: NewClassifier(rules),
		extractor:  NewExtractor(),
		logger:     logger,
	}
}

// NewAgentAt returns an agent whose meeting-time extraction is anchored to a
// fixed clock instead of the wall clock.
func NewAgentAt(now func() time.Time, logger *zap.Logger) *Agent {
	rules := DefaultRules()
	return &Agent{
		rules:      rules,
		classifier: NewClassifier(rules),
		extractor:  NewExtractorAt(now),
		logger:     logger,
	}
}

// Analyze runs the full pipeline: classify, extract, plan, summarize, draft.
// It never fails; malformed field values degrade to nil entities and FYI is
// the classification of last resort.
func (a *Agent) Analyze(email *EmailData) (AnalysisResult, ReplyDraft) {
	category, confidence := a.classifier.Classify(email)
	entities := a.extractor.Extract(email, category)
	actions, labels := PlanActions(a.rules, category, email)

	needsReview := confidence < 0.60 || a.rules.HasOptOut(email.Body)

	analysis := AnalysisResult{
		Classification: category,
		Confidence:     confidence,
		NeedsReview:    needsReview,
		Summary:        Summarize(email, category),
		Entities:       entities,
		NextActions:    actions,
		Labels:         labels,
		Reason:         ReasonFor(category),
	}

	reply := DraftReply(a.rules, email, category, entities)

	if a.logger != nil {
		a.logger.Debug("Message analyzed",
			zap.String("message_id", email.MessageID),
			zap.String("category", string(category)),
			zap.Float64("confidence", confidence),
			zap.Bool("needs_review", needsReview),
		)
	}

	return analysis, reply
}

// replyEnvelope wraps the draft the way downstream consumers expect it.
type replyEnvelope struct {
	Reply ReplyDraft `json:"reply"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// ProcessJSON is the serialized entry point: it accepts one message object
// and returns the analysis and reply objects newline-joined. This is the only
// place failures are converted to data instead of propagated.
func (a *Agent) ProcessJSON(input []byte) string {
	var email EmailData
	if err := json.Unmarshal(input, &email); err != nil {
		return errorJSON(err)
	}

	analysis, reply := a.Analyze(&email)

	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return errorJSON(err)
	}
	replyJSON, err := json.MarshalIndent(replyEnvelope{Reply: reply}, "", "  ")
	if err != nil {
		return errorJSON(err)
	}

	return string(analysisJSON) + "\n" + string(replyJSON)
}

func errorJSON(err error) string {
	out, marshalErr := json.Marshal(errorEnvelope{Error: err.Error()})
	if marshalErr != nil {
		return `{"error": "internal failure"}`
	}
	return string(out)
}
