package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (product, size) entry with a quantity, scoped to a user.
// UnitPrice is joined from the product's current price when the line is read;
// it becomes a snapshot only at checkout.
type CartLine struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"`
	ProductName string    `json:"product_name,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Product     *Product  `json:"product,omitempty"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1"`
}

type RemoveCartItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}
