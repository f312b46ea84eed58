package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"actioninbox/internal/model"
)

type AnalysisRepository struct {
	db *pgxpool.Pool
}

func NewAnalysisRepository(db *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Insert stores one analysis. ON CONFLICT keeps the handler idempotent when
// the same event is delivered twice.
func (r *AnalysisRepository) Insert(ctx context.Context, a *model.Analysis) error {
	query := `
        INSERT INTO message_analyses
            (message_raw_id, category, confidence, needs_review, summary,
             risk_level, security_score, analysis_json, reply_json, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        ON CONFLICT (message_raw_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query,
		a.MessageRawID,
		a.Category,
		a.Confidence,
		a.NeedsReview,
		a.Summary,
		a.RiskLevel,
		a.SecurityScore,
		a.AnalysisJSON,
		a.ReplyJSON,
	)
	return err
}
