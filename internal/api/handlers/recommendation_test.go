package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/visualapp/storefront-api/internal/api/handlers"
	appErrors "github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/services/mocks"
	"github.com/visualapp/storefront-api/internal/testutils"
	"github.com/visualapp/storefront-api/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	userID := uuid.New()
	childID := uuid.New()

	t.Run("Success - returns ranked entries in oracle order", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		entries := []models.RecommendationEntry{
			{ProductID: uuid.New(), Score: 0.95, Reason: "combina com o estilo"},
			{ProductID: uuid.New(), Score: 0.80, Reason: "cores preferidas"},
		}

		mockService.On("Recommend", mock.Anything, userID, childID).Return(entries, nil).Once()

		body, _ := json.Marshal(models.RecommendRequest{ChildID: childID})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Recommend().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data, _ := json.Marshal(resp.Data)
		var got models.RecommendationsResponse
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got.Recommendations, 2)
		assert.Equal(t, entries[0].ProductID, got.Recommendations[0].ProductID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - unknown child returns 404", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		mockService.On("Recommend", mock.Anything, userID, childID).
			Return(nil, appErrors.NotFoundError("Child not found")).Once()

		body, _ := json.Marshal(models.RecommendRequest{ChildID: childID})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Recommend().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - oracle outage returns 502", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		mockService.On("Recommend", mock.Anything, userID, childID).
			Return(nil, appErrors.ThirdPartyError("Recommendation oracle unavailable")).Once()

		body, _ := json.Marshal(models.RecommendRequest{ChildID: childID})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Recommend().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, resp.Error.Code)
	})

	t.Run("Failure - missing claims returns 401", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		body, _ := json.Marshal(models.RecommendRequest{ChildID: childID})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Recommend().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListRecommendations(t *testing.T) {
	userID := uuid.New()
	childID := uuid.New()

	t.Run("Success - returns stored recommendations", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		recs := []models.Recommendation{
			{ID: uuid.New(), ChildID: childID, ProductID: uuid.New(), Score: 0.9, Reason: "combina"},
		}

		mockService.On("ListRecommendations", mock.Anything, userID, childID).Return(recs, nil).Once()

		target := fmt.Sprintf("/api/v1/recommendations?child_id=%s", childID)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, target, nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListRecommendations().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - missing child_id query param returns 400", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.RecommendationService)
		handler := handlers.NewRecommendationHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/recommendations", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListRecommendations().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ListRecommendations", mock.Anything, mock.Anything, mock.Anything)
	})
}
