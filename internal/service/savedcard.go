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

// SavedCardService mirrors AddressService for the saved-card family: same
// owner partitioning, same single-default policy.
type SavedCardService interface {
	ListByUser(ctx context.Context, userID uint) ([]*model.SavedCard, error)
	Create(ctx context.Context, userID uint, req *dto.SavedCardRequest) (*model.SavedCard, error)
	Update(ctx context.Context, userID, id uint, req *dto.SavedCardRequest) (*model.SavedCard, error)
	Delete(ctx context.Context, userID, id uint) error
	SetDefault(ctx context.Context, userID, id uint) (*model.SavedCard, error)
}

type savedCardServiceImpl struct {
	db       *gorm.DB
	cardRepo repository.SavedCardRepository
}

func NewSavedCardService(db *gorm.DB, cardRepo repository.SavedCardRepository) SavedCardService {
	return &savedCardServiceImpl{
		db:       db,
		cardRepo: cardRepo,
	}
}

func (s *savedCardServiceImpl) ListByUser(ctx context.Context, userID uint) ([]*model.SavedCard, error) {
	return s.cardRepo.FindAllByUser(ctx, userID)
}

func (s *savedCardServiceImpl) Create(ctx context.Context, userID uint, req *dto.SavedCardRequest) (*model.SavedCard, error) {
	card := &model.SavedCard{
		UserID:         userID,
		CardholderName: req.CardholderName,
		Last4:          CardLast4(req.Last4),
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		CardBrand:      req.CardBrand,
		IsDefault:      req.IsDefault != nil && *req.IsDefault,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if card.IsDefault {
			if err := s.cardRepo.ClearOtherDefaults(ctx, tx, userID, 0); err != nil {
				return fmt.Errorf("clear existing defaults: %w", err)
			}
		}
		return s.cardRepo.Create(ctx, tx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

func (s *savedCardServiceImpl) Update(ctx context.Context, userID, id uint, req *dto.SavedCardRequest) (*model.SavedCard, error) {
	card, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	card.CardholderName = req.CardholderName
	card.Last4 = CardLast4(req.Last4)
	card.ExpiryMonth = req.ExpiryMonth
	card.ExpiryYear = req.ExpiryYear
	card.CardBrand = req.CardBrand

	becomesDefault := req.IsDefault != nil && *req.IsDefault && !card.IsDefault
	if req.IsDefault != nil {
		card.IsDefault = *req.IsDefault
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if becomesDefault {
			if err := s.cardRepo.ClearOtherDefaults(ctx, tx, userID, id); err != nil {
				return fmt.Errorf("clear existing defaults: %w", err)
			}
		}
		return s.cardRepo.Save(ctx, tx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

func (s *savedCardServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	card, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.cardRepo.Delete(ctx, s.db, card)
}

func (s *savedCardServiceImpl) SetDefault(ctx context.Context, userID, id uint) (*model.SavedCard, error) {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cardRepo.EnsureSoleDefault(ctx, tx, userID, id)
	})
	if err != nil {
		return nil, err
	}

	return s.findOwned(ctx, userID, id)
}

func (s *savedCardServiceImpl) findOwned(ctx context.Context, userID, id uint) (*model.SavedCard, error) {
	card, err := s.cardRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return card, nil
}
