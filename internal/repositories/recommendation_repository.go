package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type RecommendationRepository interface {
	// Upsert overwrites score and reason for an existing (child, product)
	// pair instead of accumulating history.
	Upsert(ctx context.Context, rec *models.Recommendation) error
	// ListByChild returns stored recommendations for a child owned by the
	// given user, ordered by score descending.
	ListByChild(ctx context.Context, childID, userID uuid.UUID) ([]models.Recommendation, error)
}

type recommendationRepository struct {
	DB *sql.DB
}

func NewRecommendationRepo(db *sql.DB) RecommendationRepository {
	return &recommendationRepository{DB: db}
}

func (r *recommendationRepository) Upsert(ctx context.Context, rec *models.Recommendation) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO recommendations (id, child_id, product_id, score, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (child_id, product_id)
		DO UPDATE SET score = EXCLUDED.score, reason = EXCLUDED.reason, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, uuid.New(), rec.ChildID, rec.ProductID, rec.Score, rec.Reason).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *recommendationRepository) ListByChild(ctx context.Context, childID, userID uuid.UUID) ([]models.Recommendation, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Ownership is enforced in the query itself: rows only come back when the
	// child belongs to the requesting user.
	query := `
		SELECT r.id, r.child_id, r.product_id, r.score, r.reason, r.created_at, r.updated_at
		FROM recommendations r
		JOIN children c ON c.id = r.child_id
		WHERE r.child_id = $1 AND c.user_id = $2
		ORDER BY r.score DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, childID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	defer rows.Close()

	var recs []models.Recommendation

	for rows.Next() {

		var rec models.Recommendation

		err := rows.Scan(&rec.ID, &rec.ChildID, &rec.ProductID, &rec.Score, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}
