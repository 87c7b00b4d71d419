package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appErrors "github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/repositories/mocks"
	service "github.com/visualapp/storefront-api/internal/services"
	serviceMocks "github.com/visualapp/storefront-api/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func checkoutRequest(method models.PaymentMethod) *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Address: models.CheckoutAddress{
			RecipientName: "Ana Souza",
			ZipCode:       "27511000",
			Street:        "Rua das Laranjeiras",
			Number:        "42",
			District:      "Centro",
			City:          "Resende",
			State:         "rj",
		},
		PaymentMethod: method,
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	lines := []models.CartLine{
		{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Size: "4", Quantity: 2, UnitPrice: 39.90},
		{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Size: "6", Quantity: 1, UnitPrice: 49.90},
	}

	t.Run("Success - PIX order snapshots cart and returns payment code", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		mockNotifier := new(serviceMocks.NotificationService)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, mockNotifier)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return(lines, nil).Once()
		mockOrderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.UserID == userID &&
				o.Status == models.OrderStatusPending &&
				o.PaymentStatus == models.PaymentStatusPending &&
				len(o.Items) == 2 &&
				o.Address != nil && o.Address.State == "RJ"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).OrderNumber = 1042
		}).Return(nil).Once()
		mockNotifier.On("SendOrderConfirmation", mock.Anything, "ana@example.com", mock.AnythingOfType("*models.Order")).Return(nil).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodPix))

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.NotEqual(t, uuid.Nil, resp.OrderID)
		assert.Equal(t, int64(1042), resp.OrderNumber)
		assert.InDelta(t, 129.70, resp.Total, 0.001)
		assert.NotNil(t, resp.PixCode)
		assert.True(t, strings.HasPrefix(*resp.PixCode, "000201"))
		mockOrderRepo.AssertExpectations(t)
		mockCartRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Success - card order has no payment code", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		mockNotifier := new(serviceMocks.NotificationService)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, mockNotifier)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return(lines, nil).Once()
		mockOrderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.PaymentMethod == models.PaymentMethodCreditCard && o.PixCode == nil
		})).Return(nil).Once()
		mockNotifier.On("SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodCreditCard))

		// Assert
		assert.NoError(t, err)
		assert.Nil(t, resp.PixCode)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - empty cart", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, nil)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return([]models.CartLine{}, nil).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodPix))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeEmptyCart, appErr.Code)
		mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Failure - cart read error", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, nil)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return(nil, errors.New("connection reset")).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodPix))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})

	t.Run("Failure - order persistence error", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		mockNotifier := new(serviceMocks.NotificationService)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, mockNotifier)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return(lines, nil).Once()
		mockOrderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodPix))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		mockNotifier.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - confirmation email failure does not fail checkout", func(t *testing.T) {
		// Arrange
		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartRepository)
		mockNotifier := new(serviceMocks.NotificationService)
		checkoutService := service.NewCheckoutService(mockOrderRepo, mockCartRepo, mockNotifier)

		mockCartRepo.On("ListLinesByUser", mock.Anything, userID).Return(lines, nil).Once()
		mockOrderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
		mockNotifier.On("SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		// Act
		resp, err := checkoutService.Checkout(ctx, userID, "ana@example.com", checkoutRequest(models.PaymentMethodPix))

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		mockNotifier.AssertExpectations(t)
	})
}
