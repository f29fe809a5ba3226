package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type PaymentService interface {
	// ProcessPayment is the standalone pay-an-existing-order path. Unlike
	// checkout it refuses orders that are already paid.
	ProcessPayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	GetByOrderID(ctx context.Context, orderID uint) (*dto.PaymentResponse, error)
}

type paymentServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) PaymentService {
	return &paymentServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *paymentServiceImpl) ProcessPayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	paid, err := s.orderRepo.IsPaid(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, ErrOrderAlreadyPaid
	}

	payment := &model.Payment{
		OrderID:        order.ID,
		TransactionRef: uuid.NewString(),
		Amount:         req.Amount,
		CardholderName: req.CardholderName,
		Last4:          CardLast4(req.CardNumber),
		Status:         model.PaymentStatusPaid,
		PaidAt:         time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment in db: %w", err)
		}
		if err := s.orderRepo.MarkPaid(ctx, tx, order.ID); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paymentResponse(payment), nil
}

func (s *paymentServiceImpl) GetByOrderID(ctx context.Context, orderID uint) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return paymentResponse(payment), nil
}

func paymentResponse(payment *model.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Status:    payment.Status,
		Amount:    payment.Amount,
		PaidAt:    payment.PaidAt,
	}
}
