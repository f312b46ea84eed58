package mqhandler

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"actioninbox/internal/inbox"
	"actioninbox/internal/model"
	"actioninbox/internal/mq"
	"actioninbox/internal/repository"
	"actioninbox/internal/scanner"
	"actioninbox/internal/util"
	"actioninbox/pkg/metrics"
)

type MessageReceivedAnalyzeHandler struct {
	messageRepo  *repository.MessageRepository
	analysisRepo *repository.AnalysisRepository
	agent        *inbox.Agent
	deduper      *util.Deduper
	dlq          *mq.Publisher
	logger       *zap.Logger
}

func NewMessageReceivedAnalyzeHandler(
	messageRepo *repository.MessageRepository,
	analysisRepo *repository.AnalysisRepository,
	agent *inbox.Agent,
	deduper *util.Deduper,
	dlq *mq.Publisher,
	logger *zap.Logger,
) *MessageReceivedAnalyzeHandler {
	return &MessageReceivedAnalyzeHandler{
		messageRepo:  messageRepo,
		analysisRepo: analysisRepo,
		agent:        agent,
		deduper:      deduper,
		dlq:          dlq,
		logger:       logger,
	}
}

// HandleMessageReceived analyzes one inbound message and stores the result.
// The method is idempotent: redis dedup short-circuits redeliveries, and a
// single-query status + analysis check catches anything redis missed.
func (h *MessageReceivedAnalyzeHandler) HandleMessageReceived(ctx context.Context, raw json.RawMessage) error {
	var p mq.MessageReceivedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal message received payload", zap.Error(err))
		// Poison message: requeueing can never succeed, so dead-letter it
		// and ack instead of cycling forever.
		if h.dlq != nil {
			if dlqErr := h.dlq.PublishToDLQ(mq.RoutingKeyMessageReceived, raw, err.Error()); dlqErr != nil {
				h.logger.Error("Failed to dead-letter message", zap.Error(dlqErr))
				return err
			}
			metrics.IncrementMessageProcessed("failed")
			return nil
		}
		return err
	}

	if !h.deduper.AcquireOnce(ctx, "analyze", p.MessageRawID) {
		metrics.IncrementMessageProcessed("duplicate")
		return nil
	}

	h.logger.Info("Processing message analysis",
		zap.Int("message_raw_id", p.MessageRawID),
		zap.Int("user_id", p.UserID),
		zap.String("subject", p.Message.Subject),
	)

	stored, analysisExists, err := h.messageRepo.FindRawWithAnalysisByID(ctx, p.MessageRawID)
	if err != nil {
		h.logger.Error("Failed to find message", zap.Int("message_raw_id", p.MessageRawID), zap.Error(err))
		return err
	}

	if stored.Status == "analyzed" {
		h.logger.Debug("Message already analyzed, skipping",
			zap.Int("message_raw_id", p.MessageRawID),
		)
		return nil
	}

	if analysisExists {
		if err := h.messageRepo.UpdateStatus(ctx, p.MessageRawID, "analyzed"); err != nil {
			h.logger.Error("Failed to update message status", zap.Int("message_raw_id", p.MessageRawID), zap.Error(err))
			return err
		}
		h.logger.Debug("Analysis already exists, status updated",
			zap.Int("message_raw_id", p.MessageRawID),
		)
		return nil
	}

	start := time.Now()
	analysis, reply := h.agent.Analyze(&p.Message)
	scan := scanner.Scan(p.Message.Subject, p.Message.Body, p.Message.FromEmail)
	metrics.RecordAnalyzeDuration("worker", time.Since(start))

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	replyJSON, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	row := &model.Analysis{
		MessageRawID:  p.MessageRawID,
		Category:      string(analysis.Classification),
		Confidence:    analysis.Confidence,
		NeedsReview:   analysis.NeedsReview,
		Summary:       analysis.Summary,
		RiskLevel:     string(scan.RiskLevel),
		SecurityScore: scan.SecurityScore,
		AnalysisJSON:  string(analysisJSON),
		ReplyJSON:     string(replyJSON),
	}

	if err := h.analysisRepo.Insert(ctx, row); err != nil {
		h.logger.Error("Failed to insert analysis", zap.Int("message_raw_id", p.MessageRawID), zap.Error(err))
		metrics.IncrementMessageProcessed("failed")
		return err
	}

	if err := h.messageRepo.UpdateStatus(ctx, p.MessageRawID, "analyzed"); err != nil {
		h.logger.Error("Failed to update message status", zap.Int("message_raw_id", p.MessageRawID), zap.Error(err))
		return err
	}

	metrics.IncrementClassification(string(analysis.Classification))
	metrics.IncrementMessageProcessed("success")

	h.logger.Info("Message analyzed successfully",
		zap.Int("message_raw_id", p.MessageRawID),
		zap.String("category", string(analysis.Classification)),
		zap.Float64("confidence", analysis.Confidence),
		zap.Bool("needs_review", analysis.NeedsReview),
		zap.String("risk_level", string(scan.RiskLevel)),
	)

	return nil
}
