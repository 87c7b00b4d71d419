package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewOrderRepo(db), mock
}

func testOrderFixture() *models.Order {
	orderID := uuid.New()
	pix := "00020126580014BR.GOV.BCB.PIX"
	now := time.Now()

	return &models.Order{
		ID:            orderID,
		UserID:        uuid.New(),
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentMethodPix,
		PaymentStatus: models.PaymentStatusPending,
		Subtotal:      129.70,
		Discount:      0,
		Shipping:      0,
		Total:         129.70,
		PixCode:       &pix,
		Items: []models.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Size: "4", Quantity: 2, Price: 39.90, CreatedAt: now},
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Size: "6", Quantity: 1, Price: 49.90, CreatedAt: now},
		},
		Address: &models.OrderAddress{
			ID:            uuid.New(),
			OrderID:       orderID,
			RecipientName: "Ana Souza",
			ZipCode:       "27511000",
			Street:        "Rua das Laranjeiras",
			Number:        "42",
			District:      "Centro",
			City:          "Resende",
			State:         "RJ",
		},
	}
}

func TestCreateOrder_Transaction(t *testing.T) {
	t.Run("Success - order, items, address and cart delete commit together", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := testOrderFixture()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.ID, order.UserID, order.Status, order.PaymentMethod, order.PaymentStatus,
				order.Subtotal, order.Discount, order.Shipping, order.Total, order.PixCode, order.Notes).
			WillReturnRows(sqlmock.NewRows([]string{"order_number", "created_at", "updated_at"}).AddRow(int64(1042), now, now))

		for _, item := range order.Items {
			mock.ExpectExec(`INSERT INTO order_items`).
				WithArgs(item.ID, order.ID, item.ProductID, item.Size, item.Quantity, item.Price).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		addr := order.Address
		mock.ExpectExec(`INSERT INTO order_addresses`).
			WithArgs(addr.ID, order.ID, addr.RecipientName, addr.ZipCode, addr.Street, addr.Number,
				addr.Complement, addr.District, addr.City, addr.State).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1`).
			WithArgs(order.UserID).
			WillReturnResult(sqlmock.NewResult(0, 2))

		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1042), order.OrderNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - item insert error rolls everything back", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := testOrderFixture()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"order_number", "created_at", "updated_at"}).AddRow(int64(1042), now, now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - cart delete error rolls everything back", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := testOrderFixture()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"order_number", "created_at", "updated_at"}).AddRow(int64(1042), now, now))

		for range order.Items {
			mock.ExpectExec(`INSERT INTO order_items`).WillReturnResult(sqlmock.NewResult(0, 1))
		}

		mock.ExpectExec(`INSERT INTO order_addresses`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM cart_items`).WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("Success - partial update keeps omitted fields", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		orderID := uuid.New()
		userID := uuid.New()
		now := time.Now()
		status := models.OrderStatusShipped

		req := &models.UpdateOrderRequest{Status: &status}

		rows := sqlmock.NewRows([]string{
			"id", "order_number", "user_id", "status", "payment_method", "payment_status",
			"subtotal", "discount", "shipping", "total", "pix_code", "notes", "created_at", "updated_at",
		}).AddRow(orderID, int64(7), userID, string(status), "PIX", "PAID", 129.70, 0.0, 0.0, 129.70, nil, nil, now, now)

		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(req.Status, req.PaymentStatus, req.Notes, orderID).
			WillReturnRows(rows)

		// Act
		order, err := repo.UpdateOrder(t.Context(), orderID, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
		assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - unknown order returns sql.ErrNoRows", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		orderID := uuid.New()

		mock.ExpectQuery(`UPDATE orders`).WillReturnError(sql.ErrNoRows)

		// Act
		order, err := repo.UpdateOrder(t.Context(), orderID, &models.UpdateOrderRequest{})

		// Assert
		assert.Nil(t, order)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestGetOrderByID(t *testing.T) {
	t.Run("Success - order with items and address", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		orderID := uuid.New()
		userID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		orderRows := sqlmock.NewRows([]string{
			"id", "order_number", "user_id", "status", "payment_method", "payment_status",
			"subtotal", "discount", "shipping", "total", "pix_code", "notes", "created_at", "updated_at",
		}).AddRow(orderID, int64(7), userID, "PENDING", "PIX", "PENDING", 39.90, 0.0, 0.0, 39.90, nil, nil, now, now)

		itemRows := sqlmock.NewRows([]string{"id", "product_id", "size", "quantity", "price", "created_at"}).
			AddRow(uuid.New(), productID, "4", 1, 39.90, now)

		addressRows := sqlmock.NewRows([]string{"id", "recipient_name", "zip_code", "street", "number", "complement", "district", "city", "state"}).
			AddRow(uuid.New(), "Ana Souza", "27511000", "Rua das Laranjeiras", "42", nil, "Centro", "Resende", "RJ")

		mock.ExpectQuery(`SELECT (.+) FROM orders`).WithArgs(orderID).WillReturnRows(orderRows)
		mock.ExpectQuery(`SELECT (.+) FROM order_items`).WithArgs(orderID).WillReturnRows(itemRows)
		mock.ExpectQuery(`SELECT (.+) FROM order_addresses`).WithArgs(orderID).WillReturnRows(addressRows)

		// Act
		order, err := repo.GetOrderByID(t.Context(), orderID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, userID, order.UserID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, productID, order.Items[0].ProductID)
		require.NotNil(t, order.Address)
		assert.Equal(t, "RJ", order.Address.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
