package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type CheckoutService interface {
	// CompleteCheckout turns a cart into an order, a payment and the order
	// line snapshots in one transaction. Either all of them commit or none.
	CompleteCheckout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
}

func NewCheckoutService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
	}
}

func (s *checkoutServiceImpl) CompleteCheckout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, ErrInvalidOrderAmount
	}
	amount := *req.Amount

	last4 := CardLast4(req.CardNumber)

	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := &model.Order{
			UserID:       userID,
			CustomerName: req.CustomerName,
			PhoneNumber:  req.PhoneNumber,
			AddressLine:  req.AddressLine,
			City:         req.City,
			PostalCode:   req.PostalCode,
			Amount:       amount,
			Status:       model.OrderStatusPending,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order in db: %w", err)
		}

		payment := &model.Payment{
			OrderID:        order.ID,
			TransactionRef: uuid.NewString(),
			Amount:         amount,
			CardholderName: req.CardholderName,
			Last4:          last4,
			Status:         model.PaymentStatusPaid,
			PaidAt:         time.Now(),
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment in db: %w", err)
		}

		items := make([]*model.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			item := &model.OrderItem{
				OrderID:  order.ID,
				Quantity: line.Quantity,
				Price:    line.Price,
			}

			// an unresolvable product must not block checkout once the
			// payment has nominally succeeded; the line stays as an
			// orphaned snapshot
			product, err := s.productRepo.FindByID(ctx, tx, line.ProductID)
			if err != nil {
				log.Warn().
					Err(err).
					Uint("product_id", line.ProductID).
					Uint("order_id", order.ID).
					Msg("product lookup failed, keeping order line without snapshot")
			} else {
				productID := product.ID
				item.ProductID = &productID
				item.ProductName = product.Name
				item.ProductImageURL = product.ImageURL
			}

			items = append(items, item)
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store order items in db: %w", err)
		}

		if err := s.orderRepo.MarkPaid(ctx, tx, order.ID); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order placed successfully",
	}, nil
}

// CardLast4 keeps the trailing 4 characters of a card number for the payment
// record. Numbers shorter than 4 characters fall back to a placeholder so the
// stored value is always exactly 4 characters and never the full number.
func CardLast4(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "0000"
	}
	return cardNumber[len(cardNumber)-4:]
}
