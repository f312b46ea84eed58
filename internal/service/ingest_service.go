package service

import (
	"context"
	"encoding/json"
	"time"

	"actioninbox/internal/inbox"
	"actioninbox/internal/model"
	"actioninbox/internal/mq"
	"actioninbox/internal/repository"
)

// IngestService stores an inbound message and fans it out to the analysis
// workers over the event bus.
type IngestService struct {
	messageRepo *repository.MessageRepository
	publisher   *mq.Publisher
}

func NewIngestService(messageRepo *repository.MessageRepository, publisher *mq.Publisher) *IngestService {
	return &IngestService{
		messageRepo: messageRepo,
		publisher:   publisher,
	}
}

// StoreAndPublish creates a raw message record and publishes the
// `message.received` event carrying the full message.
func (s *IngestService) StoreAndPublish(ctx context.Context, userID int, message *inbox.EmailData) (int, error) {
	rawJSON, err := json.Marshal(message)
	if err != nil {
		return 0, err
	}

	raw := &model.MessageRaw{
		UserID:    userID,
		MessageID: message.MessageID,
		Subject:   message.Subject,
		FromEmail: message.FromEmail,
		Body:      message.Body,
		RawJSON:   string(rawJSON),
		Status:    "received",
		CreatedAt: time.Now(),
	}

	rawID, err := s.messageRepo.CreateRawMessage(ctx, raw)
	if err != nil {
		return 0, err
	}

	payload := mq.MessageReceivedPayload{
		MessageRawID: rawID,
		UserID:       userID,
		Message:      *message,
		ReceivedAt:   time.Now(),
	}

	if err := s.publisher.Publish(mq.RoutingKeyMessageReceived, payload); err != nil {
		return 0, err
	}

	return rawID, nil
}
