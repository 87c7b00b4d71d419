package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecommendationRepoTest(t *testing.T) (repository.RecommendationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewRecommendationRepo(db), mock
}

func TestRecommendationUpsert(t *testing.T) {
	t.Run("Success - conflict on (child_id, product_id) overwrites score", func(t *testing.T) {
		// Arrange
		repo, mock := setupRecommendationRepoTest(t)
		now := time.Now()

		rec := &models.Recommendation{
			ChildID:   uuid.New(),
			ProductID: uuid.New(),
			Score:     0.92,
			Reason:    "combina com o estilo casual",
		}

		mock.ExpectQuery(`INSERT INTO recommendations (.+) ON CONFLICT \(child_id, product_id\)`).
			WithArgs(sqlmock.AnyArg(), rec.ChildID, rec.ProductID, rec.Score, rec.Reason).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), now, now))

		// Act
		err := repo.Upsert(t.Context(), rec)

		// Assert
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - database error", func(t *testing.T) {
		// Arrange
		repo, mock := setupRecommendationRepoTest(t)

		mock.ExpectQuery(`INSERT INTO recommendations`).WillReturnError(errors.New("connection reset"))

		// Act
		err := repo.Upsert(t.Context(), &models.Recommendation{ChildID: uuid.New(), ProductID: uuid.New()})

		// Assert
		assert.Error(t, err)
	})
}

func TestListByChild(t *testing.T) {
	t.Run("Success - rows ordered by score descending", func(t *testing.T) {
		// Arrange
		repo, mock := setupRecommendationRepoTest(t)
		childID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "child_id", "product_id", "score", "reason", "created_at", "updated_at"}).
			AddRow(uuid.New(), childID, uuid.New(), 0.95, "primeira opção", now, now).
			AddRow(uuid.New(), childID, uuid.New(), 0.70, "segunda opção", now, now)

		mock.ExpectQuery(`SELECT (.+) FROM recommendations r\s+JOIN children c ON c\.id = r\.child_id`).
			WithArgs(childID, userID).
			WillReturnRows(rows)

		// Act
		recs, err := repo.ListByChild(t.Context(), childID, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.GreaterOrEqual(t, recs[0].Score, recs[1].Score)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - foreign child yields no rows", func(t *testing.T) {
		// Arrange
		repo, mock := setupRecommendationRepoTest(t)
		childID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM recommendations`).
			WithArgs(childID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "child_id", "product_id", "score", "reason", "created_at", "updated_at"}))

		// Act
		recs, err := repo.ListByChild(t.Context(), childID, userID)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})
}
