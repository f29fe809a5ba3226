package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type OrderService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Order, error)
	// GetByID is deliberately not scoped to the acting user, matching the
	// behavior the frontend depends on. See DESIGN.md.
	GetByID(ctx context.Context, id uint) (*model.Order, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		db:        db,
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, ErrInvalidOrderAmount
	}

	order := &model.Order{
		UserID:       userID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		AddressLine:  req.AddressLine,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Amount:       *req.Amount,
		Status:       model.OrderStatusPending,
		// keep the payload shape consistent with the read surface,
		// which always renders an items array
		Items: []model.OrderItem{},
	}

	if err := s.orderRepo.Create(ctx, s.db, order); err != nil {
		return nil, fmt.Errorf("store order in db: %w", err)
	}

	return order, nil
}

func (s *orderServiceImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Order, error) {
	return s.orderRepo.FindAllByUser(ctx, userID)
}

func (s *orderServiceImpl) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := s.orderRepo.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	order.Items = items

	return order, nil
}
