package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/payments"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type CheckoutService interface {
	// Checkout snapshots the user's cart into an immutable order, exactly
	// once per invocation, with no partial effects.
	Checkout(ctx context.Context, userID uuid.UUID, userEmail string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	notifier  NotificationService
}

func NewCheckoutService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, notifier NotificationService) CheckoutService {
	return &checkoutService{orderRepo: orderRepo, cartRepo: cartRepo, notifier: notifier}
}

func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, userEmail string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {

	// The emptiness check and the order creation observe the same snapshot:
	// the transactional DELETE in CreateOrder removes exactly the lines read
	// here, and a concurrent second checkout simply finds an empty cart.
	lines, err := s.cartRepo.ListLinesByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to read cart").WithError(err)
	}

	if len(lines) == 0 {
		return nil, errors.EmptyCartError("Cannot checkout an empty cart")
	}

	var subtotal float64

	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	// Zero today, but computed so a discount/shipping rule can slot in
	// without changing the contract.
	discount, shipping := 0.0, 0.0
	total := subtotal - discount + shipping

	// The id is generated before persisting so the payment reference can
	// embed it.
	orderID := uuid.New()

	var pixCode *string

	if req.PaymentMethod == models.PaymentMethodPix {
		code := payments.GeneratePixCode(total, orderID)
		pixCode = &code
	}

	order := &models.Order{
		ID:            orderID,
		UserID:        userID,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		Subtotal:      subtotal,
		Discount:      discount,
		Shipping:      shipping,
		Total:         total,
		PixCode:       pixCode,
		Items:         make([]models.OrderItem, 0, len(lines)),
		Address:       buildOrderAddress(orderID, &req.Address),
	}

	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	// Best effort: a failed confirmation email never fails the checkout.
	if s.notifier != nil && userEmail != "" {
		if err := s.notifier.SendOrderConfirmation(ctx, userEmail, order); err != nil {
			slog.Warn("Failed to send order confirmation",
				slog.String("orderId", order.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	return &models.CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PixCode:     pixCode,
		Total:       total,
	}, nil
}

func buildOrderAddress(orderID uuid.UUID, addr *models.CheckoutAddress) *models.OrderAddress {

	var complement *string

	if c := strings.TrimSpace(addr.Complement); c != "" {
		complement = &c
	}

	return &models.OrderAddress{
		ID:            uuid.New(),
		OrderID:       orderID,
		RecipientName: addr.RecipientName,
		ZipCode:       addr.ZipCode,
		Street:        addr.Street,
		Number:        addr.Number,
		Complement:    complement,
		District:      addr.District,
		City:          addr.City,
		State:         strings.ToUpper(addr.State),
	}
}
