package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/repositories/mocks"
	service "github.com/visualapp/storefront-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrder(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	storedOrder := &models.Order{ID: orderID, UserID: ownerID, Status: models.OrderStatusPending}

	t.Run("Success - owner reads own order", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("GetOrderByID", mock.Anything, orderID).Return(storedOrder, nil).Once()

		// Act
		order, err := orderService.GetOrder(ctx, ownerID, orderID, false)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
	})

	t.Run("Failure - foreign order is forbidden", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("GetOrderByID", mock.Anything, orderID).Return(storedOrder, nil).Once()

		// Act
		order, err := orderService.GetOrder(ctx, uuid.New(), orderID, false)

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})

	t.Run("Success - admin reads any order", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("GetOrderByID", mock.Anything, orderID).Return(storedOrder, nil).Once()

		// Act
		order, err := orderService.GetOrder(ctx, uuid.New(), orderID, true)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
	})

	t.Run("Failure - unknown order", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("GetOrderByID", mock.Anything, orderID).Return(nil, sql.ErrNoRows).Once()

		// Act
		order, err := orderService.GetOrder(ctx, ownerID, orderID, false)

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - page bounds are clamped", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("ListOrdersByUser", mock.Anything, userID, 1, 10).
			Return([]models.Order{{ID: uuid.New(), UserID: userID}}, 1, nil).Once()

		// Act
		orders, total, err := orderService.ListOrders(ctx, userID, 0, -5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, orders, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - no orders yields empty slice", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("ListOrdersByUser", mock.Anything, userID, 1, 10).Return(nil, 0, nil).Once()

		// Act
		orders, total, err := orderService.ListOrders(ctx, userID, 1, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Success - status transition", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		status := models.OrderStatusShipped
		req := &models.UpdateOrderRequest{Status: &status}
		updated := &models.Order{ID: orderID, Status: status}

		mockRepo.On("UpdateOrder", mock.Anything, orderID, req).Return(updated, nil).Once()

		// Act
		order, err := orderService.UpdateOrder(ctx, orderID, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
	})

	t.Run("Failure - unknown order maps to 404", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.OrderRepository)
		orderService := service.NewOrderService(mockRepo)

		mockRepo.On("UpdateOrder", mock.Anything, orderID, mock.Anything).Return(nil, sql.ErrNoRows).Once()

		// Act
		order, err := orderService.UpdateOrder(ctx, orderID, &models.UpdateOrderRequest{})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
