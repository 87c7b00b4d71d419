package service

import (
	"context"

	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartLine, error)
	RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {

	lines, err := s.cartRepo.ListLinesByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to read cart").WithError(err)
	}

	if lines == nil {
		lines = []models.CartLine{}
	}

	return lines, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartLine, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if !product.Active {
		return nil, errors.BadRequestError("Product is not available")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	line := &models.CartLine{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  quantity,
	}

	if err := s.cartRepo.UpsertLine(ctx, line); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	line.ProductName = product.Name
	line.UnitPrice = product.Price

	return line, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error {

	if err := s.cartRepo.DeleteLine(ctx, userID, lineID); err != nil {
		return errors.NotFoundError("Cart item not found").WithError(err)
	}

	return nil
}
