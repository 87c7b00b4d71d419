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
)

type ChildHandler struct {
	childService service.ChildService
	validator    *validator.Validate
}

func NewChildHandler(childService service.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService, validator: validator.New()}
}

func (h *ChildHandler) CreateChild() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateChildRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create child input")
			return
		}

		child, err := h.childService.CreateChild(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create child profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Child profile created", slog.String("childId", child.ID.String()))
		response.Success(w, http.StatusCreated, child)
	}
}

func (h *ChildHandler) ListChildren() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		children, err := h.childService.ListChildren(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list children", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, children)
	}
}

func (h *ChildHandler) GetChild() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		child, err := h.childService.GetChild(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Child lookup failed", slog.String("childId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, child)
	}
}

func (h *ChildHandler) UpdateChild() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateChildRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update child input")
			return
		}

		child, err := h.childService.UpdateChild(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update child profile", slog.String("childId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, child)
	}
}

func (h *ChildHandler) DeleteChild() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.childService.DeleteChild(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete child profile", slog.String("childId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Child profile deactivated", slog.String("childId", id.String()))
		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
