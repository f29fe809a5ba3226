package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

func newCheckoutService(db *gorm.DB) CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCompleteCheckout_Success(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	p1 := seedProduct(t, db, "Lipstick", "https://img.example.com/lipstick.jpg", "10.00")
	p2 := seedProduct(t, db, "Serum", "https://img.example.com/serum.jpg", "29.99")

	svc := newCheckoutService(db)
	resp, err := svc.CompleteCheckout(ctx, user.ID, &dto.CheckoutRequest{
		CustomerName:   "Alice Smith",
		PhoneNumber:    "555-0100",
		AddressLine:    "1 Main St",
		City:           "Springfield",
		PostalCode:     "12345",
		CardholderName: "Alice Smith",
		CardNumber:     "4111111111111111",
		Amount:         decPtr("49.99"),
		Items: []*dto.CheckoutItem{
			{ProductID: p1.ID, Quantity: 2, Price: dec("10.00")},
			{ProductID: p2.ID, Quantity: 1, Price: dec("29.99")},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotZero(t, resp.OrderID)

	var order model.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.OrderID).Error)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
	assert.Equal(t, user.ID, order.UserID)
	assert.True(t, order.Amount.Equal(dec("49.99")))

	var payment model.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&payment).Error)
	assert.Equal(t, model.PaymentStatusPaid, payment.Status)
	assert.True(t, payment.Amount.Equal(order.Amount))
	assert.Equal(t, "1111", payment.Last4)
	assert.NotEmpty(t, payment.TransactionRef)
	assert.False(t, payment.PaidAt.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Lipstick", order.Items[0].ProductName)
	assert.Equal(t, "https://img.example.com/lipstick.jpg", order.Items[0].ProductImageURL)
	assert.True(t, order.Items[0].LineTotal().Equal(dec("20.00")))
	assert.True(t, order.Items[1].LineTotal().Equal(dec("29.99")))
}

func TestCompleteCheckout_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	svc := newCheckoutService(db)

	for _, req := range []*dto.CheckoutRequest{
		{Amount: nil},
		{Amount: decPtr("0")},
		{Amount: decPtr("-5.00")},
	} {
		_, err := svc.CompleteCheckout(ctx, user.ID, req)
		require.ErrorIs(t, err, ErrInvalidOrderAmount)
	}

	// nothing must survive a rejected checkout
	assert.Zero(t, countRows[model.Order](t, db))
	assert.Zero(t, countRows[model.Payment](t, db))
	assert.Zero(t, countRows[model.OrderItem](t, db))
}

func TestCompleteCheckout_UnresolvableProduct(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	svc := newCheckoutService(db)

	resp, err := svc.CompleteCheckout(ctx, user.ID, &dto.CheckoutRequest{
		CardNumber: "4111111111111111",
		Amount:     decPtr("7.50"),
		Items: []*dto.CheckoutItem{
			{ProductID: 9999, Quantity: 3, Price: dec("2.50")},
		},
	})
	require.NoError(t, err)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].ProductID)
	assert.Empty(t, items[0].ProductName)
	assert.Empty(t, items[0].ProductImageURL)
	assert.Equal(t, int32(3), items[0].Quantity)
	assert.True(t, items[0].Price.Equal(dec("2.50")))
}

func TestCompleteCheckout_ShortCardNumber(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	svc := newCheckoutService(db)

	resp, err := svc.CompleteCheckout(ctx, user.ID, &dto.CheckoutRequest{
		CardNumber: "12",
		Amount:     decPtr("1.00"),
	})
	require.NoError(t, err)

	var payment model.Payment
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).First(&payment).Error)
	assert.Equal(t, "0000", payment.Last4)
}

func TestCompleteCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	svc := newCheckoutService(db)

	// an empty cart is a degraded but valid checkout
	resp, err := svc.CompleteCheckout(ctx, user.ID, &dto.CheckoutRequest{
		Amount: decPtr("5.00"),
	})
	require.NoError(t, err)

	var order model.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.OrderID).Error)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
	assert.Empty(t, order.Items)
	assert.EqualValues(t, 1, countRows[model.Payment](t, db))
}

func TestCompleteCheckout_SnapshotSurvivesProductEdit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "Original Name", "https://img.example.com/a.jpg", "10.00")
	svc := newCheckoutService(db)

	resp, err := svc.CompleteCheckout(ctx, user.ID, &dto.CheckoutRequest{
		Amount: decPtr("10.00"),
		Items: []*dto.CheckoutItem{
			{ProductID: product.ID, Quantity: 1, Price: dec("10.00")},
		},
	})
	require.NoError(t, err)

	product.Name = "Renamed"
	product.ImageURL = "https://img.example.com/b.jpg"
	require.NoError(t, repository.NewProductRepository(db).Save(ctx, product))

	var item model.OrderItem
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).First(&item).Error)
	assert.Equal(t, "Original Name", item.ProductName)
	assert.Equal(t, "https://img.example.com/a.jpg", item.ProductImageURL)
}

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "1111", CardLast4("4111111111111111"))
	assert.Equal(t, "1234", CardLast4("1234"))
	assert.Equal(t, "0000", CardLast4("123"))
	assert.Equal(t, "0000", CardLast4(""))
}
