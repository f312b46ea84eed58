package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"actioninbox/internal/model"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends one processing event.
func (r *AuditRepository) Insert(ctx context.Context, e *model.AuditEntry) error {
	query := `
        INSERT INTO audit_log (user_id, message_raw_id, event, created_at)
        VALUES ($1, $2, $3, NOW())
    `
	_, err := r.db.Exec(ctx, query, e.UserID, e.MessageRawID, e.Event)
	return err
}
