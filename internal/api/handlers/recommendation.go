package handlers

import (
	"log/slog"
	"net/http"

	"github.com/visualapp/storefront-api/internal/api/middleware"
	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	service "github.com/visualapp/storefront-api/internal/services"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/visualapp/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
	validator             *validator.Validate
}

func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, validator: validator.New()}
}

// Recommend godoc
//	@Summary		Generate recommendations for a child
//	@Description	Scores the active catalog against the child's profile and persists the ranked result. The child must belong to the authenticated user.
//	@Tags			Recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.RecommendRequest				true	"Child ID"
//	@Success		200		{object}	models.RecommendationsResponse
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Child not found"
//	@Failure		502		{object}	response.ErrorResponse	"Scoring service unavailable"
//	@Security		BearerAuth
//	@Router			/recommendations [post]
func (h *RecommendationHandler) Recommend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized recommendation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.RecommendRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid recommendation input")
			return
		}

		entries, err := h.recommendationService.Recommend(r.Context(), claims.UserID, req.ChildID)
		if err != nil {
			logger.Error("Recommendation run failed", slog.String("childId", req.ChildID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Recommendations generated",
			slog.String("childId", req.ChildID.String()),
			slog.Int("count", len(entries)))
		response.Success(w, http.StatusOK, models.RecommendationsResponse{Recommendations: entries})
	}
}

func (h *RecommendationHandler) ListRecommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized recommendation access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		childID, err := uuid.Parse(r.URL.Query().Get("child_id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("A valid child_id query parameter is required"))
			return
		}

		recommendations, err := h.recommendationService.ListRecommendations(r.Context(), claims.UserID, childID)
		if err != nil {
			logger.Warn("Failed to list recommendations", slog.String("childId", childID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, recommendations)
	}
}
