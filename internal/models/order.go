package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"

	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

// CheckoutAddress is validated up front and persisted as an immutable
// snapshot owned by the order it belongs to.
type CheckoutAddress struct {
	RecipientName string `json:"recipient_name" validate:"required,min=2"`
	ZipCode       string `json:"zip_code" validate:"required,min=8"`
	Street        string `json:"street" validate:"required,min=3"`
	Number        string `json:"number" validate:"required"`
	Complement    string `json:"complement,omitempty"`
	District      string `json:"district" validate:"required,min=2"`
	City          string `json:"city" validate:"required,min=2"`
	State         string `json:"state" validate:"required,len=2"`
}

type CheckoutRequest struct {
	Address       CheckoutAddress `json:"address" validate:"required"`
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"required,oneof=PIX CREDIT_CARD DEBIT_CARD"`
}

type CheckoutResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber int64     `json:"order_number"`
	PixCode     *string   `json:"pix_code,omitempty"`
	Total       float64   `json:"total"`
}

// OrderItem keeps the size, quantity and unit price snapshotted at checkout
// time; later catalog price changes never alter historical orders.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderAddress struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	RecipientName string    `json:"recipient_name"`
	ZipCode       string    `json:"zip_code"`
	Street        string    `json:"street"`
	Number        string    `json:"number"`
	Complement    *string   `json:"complement,omitempty"`
	District      string    `json:"district"`
	City          string    `json:"city"`
	State         string    `json:"state"`
}

type Order struct {
	ID            uuid.UUID     `json:"id"`
	OrderNumber   int64         `json:"order_number"`
	UserID        uuid.UUID     `json:"user_id"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Shipping      float64       `json:"shipping"`
	Total         float64       `json:"total"`
	PixCode       *string       `json:"pix_code,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	Items         []OrderItem   `json:"items,omitempty"`
	Address       *OrderAddress `json:"address,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// UpdateOrderRequest is the admin back-office partial update.
type UpdateOrderRequest struct {
	Status        *OrderStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED PREPARING SHIPPED DELIVERED CANCELLED"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=PENDING PROCESSING PAID FAILED REFUNDED"`
	Notes         *string        `json:"notes,omitempty"`
}
