package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"actioninbox/internal/model"
	"actioninbox/internal/mq"
	"actioninbox/internal/repository"
)

type MessageReceivedAuditHandler struct {
	repo   *repository.AuditRepository
	logger *zap.Logger
}

func NewMessageReceivedAuditHandler(repo *repository.AuditRepository, logger *zap.Logger) *MessageReceivedAuditHandler {
	return &MessageReceivedAuditHandler{
		repo:   repo,
		logger: logger,
	}
}

// HandleMessageReceived appends a processing record to the audit log.
func (h *MessageReceivedAuditHandler) HandleMessageReceived(ctx context.Context, raw json.RawMessage) error {
	var p mq.MessageReceivedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal message received payload", zap.Error(err))
		return err
	}

	entry := &model.AuditEntry{
		UserID:       p.UserID,
		MessageRawID: p.MessageRawID,
		Event:        fmt.Sprintf("message received: %s", p.Message.Subject),
	}

	if err := h.repo.Insert(ctx, entry); err != nil {
		h.logger.Error("Failed to insert audit entry",
			zap.Int("message_raw_id", p.MessageRawID),
			zap.Int("user_id", p.UserID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Debug("Audit entry created",
		zap.Int("message_raw_id", p.MessageRawID),
		zap.Int("user_id", p.UserID),
	)

	return nil
}
