package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ChildRepository interface {
	CreateChild(ctx context.Context, child *models.Child) error
	// GetActiveChild resolves an active child owned by the given user.
	GetActiveChild(ctx context.Context, id, userID uuid.UUID) (*models.Child, error)
	ListChildrenByUser(ctx context.Context, userID uuid.UUID) ([]models.Child, error)
	UpdateChild(ctx context.Context, child *models.Child) error
	DeactivateChild(ctx context.Context, id, userID uuid.UUID) error
}

type childRepository struct {
	DB *sql.DB
}

func NewChildRepo(db *sql.DB) ChildRepository {
	return &childRepository{DB: db}
}

const childColumns = `id, user_id, name, birth_date, gender, clothing_size, shoe_size, height, weight,
		style_prefs, occasion_prefs, color_prefs, notes, avatar, active, created_at, updated_at`

func scanChild(scanner interface{ Scan(...any) error }) (*models.Child, error) {

	child := &models.Child{}

	err := scanner.Scan(&child.ID, &child.UserID, &child.Name, &child.BirthDate, &child.Gender,
		&child.ClothingSize, &child.ShoeSize, &child.Height, &child.Weight,
		pq.Array(&child.StylePrefs), pq.Array(&child.OccasionPrefs), pq.Array(&child.ColorPrefs),
		&child.Notes, &child.Avatar, &child.Active, &child.CreatedAt, &child.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return child, nil
}

func (r *childRepository) CreateChild(ctx context.Context, child *models.Child) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO children (id, user_id, name, birth_date, gender, clothing_size, shoe_size, height, weight,
		                      style_prefs, occasion_prefs, color_prefs, notes, avatar, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		child.ID, child.UserID, child.Name, child.BirthDate, child.Gender, child.ClothingSize,
		child.ShoeSize, child.Height, child.Weight,
		pq.Array(child.StylePrefs), pq.Array(child.OccasionPrefs), pq.Array(child.ColorPrefs),
		child.Notes, child.Avatar).
		Scan(&child.CreatedAt, &child.UpdatedAt)
}

func (r *childRepository) GetActiveChild(ctx context.Context, id, userID uuid.UUID) (*models.Child, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE id = $1 AND user_id = $2 AND active = TRUE`

	return scanChild(r.DB.QueryRowContext(dbCtx, query, id, userID))
}

func (r *childRepository) ListChildrenByUser(ctx context.Context, userID uuid.UUID) ([]models.Child, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE user_id = $1 AND active = TRUE
		ORDER BY created_at`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	defer rows.Close()

	var children []models.Child

	for rows.Next() {

		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}

		children = append(children, *child)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return children, nil
}

func (r *childRepository) UpdateChild(ctx context.Context, child *models.Child) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE children
		SET name = $1, birth_date = $2, gender = $3, clothing_size = $4, shoe_size = $5,
		    height = $6, weight = $7, style_prefs = $8, occasion_prefs = $9, color_prefs = $10,
		    notes = $11, avatar = $12, updated_at = NOW()
		WHERE id = $13 AND user_id = $14
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		child.Name, child.BirthDate, child.Gender, child.ClothingSize, child.ShoeSize,
		child.Height, child.Weight,
		pq.Array(child.StylePrefs), pq.Array(child.OccasionPrefs), pq.Array(child.ColorPrefs),
		child.Notes, child.Avatar, child.ID, child.UserID).
		Scan(&child.UpdatedAt)
}

// DeactivateChild soft-deletes; profiles feed historical recommendations and
// are never physically removed.
func (r *childRepository) DeactivateChild(ctx context.Context, id, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE children SET active = FALSE, updated_at = NOW() WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate child: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}
