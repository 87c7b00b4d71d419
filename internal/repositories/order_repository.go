package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	// CreateOrder persists the order, its items and its address, and clears
	// the user's cart lines, all inside one transaction. Either everything
	// becomes visible or nothing does.
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// no-op after a successful commit
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, user_id, status, payment_method, payment_status,
		                    subtotal, discount, shipping, total, pix_code, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING order_number, created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, orderQuery,
		order.ID, order.UserID, order.Status, order.PaymentMethod, order.PaymentStatus,
		order.Subtotal, order.Discount, order.Shipping, order.Total, order.PixCode, order.Notes).
		Scan(&order.OrderNumber, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, size, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	for i := range order.Items {

		item := &order.Items[i]

		_, err := tx.ExecContext(dbCtx, itemQuery, item.ID, order.ID, item.ProductID, item.Size, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	addressQuery := `
		INSERT INTO order_addresses (id, order_id, recipient_name, zip_code, street, number, complement, district, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	addr := order.Address

	_, err = tx.ExecContext(dbCtx, addressQuery,
		addr.ID, order.ID, addr.RecipientName, addr.ZipCode, addr.Street, addr.Number,
		addr.Complement, addr.District, addr.City, addr.State)

	if err != nil {
		return fmt.Errorf("failed to insert order address: %w", err)
	}

	// The cart snapshot this order was built from must disappear in the same
	// transaction; a crash in between would otherwise allow a duplicate order
	// on retry.
	_, err = tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, order_number, user_id, status, payment_method, payment_status,
		       subtotal, discount, shipping, total, pix_code, notes, created_at, updated_at
		FROM orders
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
		&order.Subtotal, &order.Discount, &order.Shipping, &order.Total, &order.PixCode, &order.Notes,
		&order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	itemsQuery := `
		SELECT id, product_id, size, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1`

	rows, err := r.DB.QueryContext(dbCtx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.Size, &item.Quantity, &item.Price, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = order.ID
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	addressQuery := `
		SELECT id, recipient_name, zip_code, street, number, complement, district, city, state
		FROM order_addresses
		WHERE order_id = $1`

	addr := &models.OrderAddress{OrderID: order.ID}

	err = r.DB.QueryRowContext(dbCtx, addressQuery, id).Scan(
		&addr.ID, &addr.RecipientName, &addr.ZipCode, &addr.Street, &addr.Number,
		&addr.Complement, &addr.District, &addr.City, &addr.State)

	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get the order address: %w", err)
	}

	if err == nil {
		order.Address = addr
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, order_number, status, payment_method, payment_status,
		       subtotal, discount, shipping, total, pix_code, notes, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		order := models.Order{UserID: userID}

		err := rows.Scan(&order.ID, &order.OrderNumber, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
			&order.Subtotal, &order.Discount, &order.Shipping, &order.Total, &order.PixCode, &order.Notes,
			&order.CreatedAt, &order.UpdatedAt)

		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateOrder applies the admin back-office partial update. Omitted fields
// keep their stored value.
func (r *orderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET status = COALESCE($1, status),
		    payment_status = COALESCE($2, payment_status),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE id = $4
		RETURNING id, order_number, user_id, status, payment_method, payment_status,
		          subtotal, discount, shipping, total, pix_code, notes, created_at, updated_at`

	order := &models.Order{}

	err := r.DB.QueryRowContext(dbCtx, query, req.Status, req.PaymentStatus, req.Notes, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
		&order.Subtotal, &order.Discount, &order.Shipping, &order.Total, &order.PixCode, &order.Notes,
		&order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update the order: %w", err)
	}

	return order, nil
}
