package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"actioninbox/internal/model"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateRawMessage inserts the inbound message as delivered.
func (r *MessageRepository) CreateRawMessage(ctx context.Context, m *model.MessageRaw) (int, error) {
	query := `
        INSERT INTO messages_raw (user_id, message_id, subject, from_email, body, raw_json, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, 'received', NOW())
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, m.UserID, m.MessageID, m.Subject, m.FromEmail, m.Body, m.RawJSON).Scan(&id)
	return id, err
}

// FindRawByID returns a raw message by id.
func (r *MessageRepository) FindRawByID(ctx context.Context, id int) (*model.MessageRaw, error) {
	query := `
        SELECT id, user_id, message_id, subject, from_email, body, raw_json, status, created_at
        FROM messages_raw
        WHERE id = $1
    `
	var m model.MessageRaw
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.UserID,
		&m.MessageID,
		&m.Subject,
		&m.FromEmail,
		&m.Body,
		&m.RawJSON,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRawWithAnalysisByID returns a raw message and whether an analysis row
// already exists, in a single round trip.
func (r *MessageRepository) FindRawWithAnalysisByID(ctx context.Context, id int) (*model.MessageRaw, bool, error) {
	query := `
        SELECT
            r.id,
            r.user_id,
            r.message_id,
            r.subject,
            r.from_email,
            r.body,
            r.raw_json,
            r.status,
            r.created_at,
            a.id as analysis_id
        FROM messages_raw r
        LEFT JOIN message_analyses a ON r.id = a.message_raw_id
        WHERE r.id = $1
    `
	var m model.MessageRaw
	var analysisID *int
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.UserID,
		&m.MessageID,
		&m.Subject,
		&m.FromEmail,
		&m.Body,
		&m.RawJSON,
		&m.Status,
		&m.CreatedAt,
		&analysisID,
	)
	if err != nil {
		return nil, false, err
	}
	return &m, analysisID != nil, nil
}

// UpdateStatus sets raw message status (e.g. analyzed).
func (r *MessageRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE messages_raw
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

// ListMessagesWithAnalysis returns all messages + analysis for a user.
func (r *MessageRepository) ListMessagesWithAnalysis(ctx context.Context, userID int) ([]model.MessageWithAnalysis, error) {
	query := `
        SELECT
            r.id,
            r.subject,
            r.from_email,
            r.status,
            r.created_at,
            a.category,
            a.confidence,
            a.needs_review,
            a.summary,
            a.risk_level
        FROM messages_raw r
        LEFT JOIN message_analyses a
        ON r.id = a.message_raw_id
        WHERE r.user_id = $1
        ORDER BY r.created_at DESC
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.MessageWithAnalysis
	for rows.Next() {
		var m model.MessageWithAnalysis
		if err := rows.Scan(
			&m.ID,
			&m.Subject,
			&m.FromEmail,
			&m.Status,
			&m.CreatedAt,
			&m.Category,
			&m.Confidence,
			&m.NeedsReview,
			&m.Summary,
			&m.RiskLevel,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
