package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	GetOrder(ctx context.Context, userID, orderID uuid.UUID, isAdmin bool) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID, isAdmin bool) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID && !isAdmin {
		return nil, errors.ForbiddenError("Order belongs to another customer")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	orders, total, err := s.repo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list orders").WithError(err)
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {

	order, err := s.repo.UpdateOrder(ctx, orderID, req)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update order").WithError(err)
	}

	return order, nil
}
