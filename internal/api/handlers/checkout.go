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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from the current cart
//	@Description	Snapshots the authenticated user's cart into an order with a shipping address, clears the cart, and returns the payment reference. Requires authentication.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest		true	"Shipping address and payment method"
//	@Success		201			{object}	models.CheckoutResponse		"Order placed"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		resp, err := h.checkoutService.Checkout(r.Context(), claims.UserID, claims.Email, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed",
			slog.String("orderId", resp.OrderID.String()),
			slog.Int64("orderNumber", resp.OrderNumber))
		response.Success(w, http.StatusCreated, resp)
	}
}
