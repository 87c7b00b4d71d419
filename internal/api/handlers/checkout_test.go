package handlers_test

import (
	"bytes"
	"encoding/json"
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

func validCheckoutBody(method models.PaymentMethod) []byte {
	body, _ := json.Marshal(models.CheckoutRequest{
		Address: models.CheckoutAddress{
			RecipientName: "Ana Souza",
			ZipCode:       "27511000",
			Street:        "Rua das Laranjeiras",
			Number:        "42",
			District:      "Centro",
			City:          "Resende",
			State:         "RJ",
		},
		PaymentMethod: method,
	})

	return body
}

func TestCheckoutHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - returns 201 with order summary", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(mockService)

		pix := "00020126580014BR.GOV.BCB.PIX"
		expected := &models.CheckoutResponse{
			OrderID:     uuid.New(),
			OrderNumber: 1042,
			PixCode:     &pix,
			Total:       129.70,
		}

		mockService.On("Checkout", mock.Anything, userID, "test@example.com", mock.AnythingOfType("*models.CheckoutRequest")).
			Return(expected, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader(validCheckoutBody(models.PaymentMethodPix)), userID, nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data, _ := json.Marshal(resp.Data)
		var got models.CheckoutResponse
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, expected.OrderID, got.OrderID)
		assert.Equal(t, int64(1042), got.OrderNumber)
		require.NotNil(t, got.PixCode)
		assert.Equal(t, pix, *got.PixCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - missing claims returns 401", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader(validCheckoutBody(models.PaymentMethodPix)), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - invalid address returns 400 validation error", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(mockService)

		body, _ := json.Marshal(models.CheckoutRequest{
			Address: models.CheckoutAddress{
				RecipientName: "Ana Souza",
				ZipCode:       "27511000",
				Street:        "Rua das Laranjeiras",
				Number:        "42",
				District:      "Centro",
				City:          "Resende",
				State:         "Rio de Janeiro", // must be exactly 2 chars
			},
			PaymentMethod: models.PaymentMethodPix,
		})

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - empty cart maps to 400 EMPTY_CART", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(mockService)

		mockService.On("Checkout", mock.Anything, userID, mock.Anything, mock.Anything).
			Return(nil, appErrors.EmptyCartError("Cannot checkout an empty cart")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader(validCheckoutBody(models.PaymentMethodPix)), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, resp.Error.Code)
	})
}
