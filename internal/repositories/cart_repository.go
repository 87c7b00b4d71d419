package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	// ListLinesByUser returns the user's cart lines joined with the product's
	// current name and price.
	ListLinesByUser(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error)
	UpsertLine(ctx context.Context, line *models.CartLine) error
	DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) ListLinesByUser(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.size, ci.quantity,
		       p.name, p.price, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	defer rows.Close()

	var lines []models.CartLine

	for rows.Next() {

		var line models.CartLine

		err := rows.Scan(&line.ID, &line.UserID, &line.ProductID, &line.Size, &line.Quantity,
			&line.ProductName, &line.UnitPrice, &line.CreatedAt, &line.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// UpsertLine inserts a new (user, product, size) line or increments the
// quantity of the existing one.
func (r *cartRepository) UpsertLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (id, user_id, product_id, size, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, product_id, size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, uuid.New(), line.UserID, line.ProductID, line.Size, line.Quantity).
		Scan(&line.ID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt)
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}
