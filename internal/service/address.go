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

// AddressService owns the shipping-address book. Per user at most one address
// carries the default flag; every mutation below keeps that invariant.
type AddressService interface {
	ListByUser(ctx context.Context, userID uint) ([]*model.Address, error)
	Create(ctx context.Context, userID uint, req *dto.AddressRequest) (*model.Address, error)
	Update(ctx context.Context, userID, id uint, req *dto.AddressRequest) (*model.Address, error)
	Delete(ctx context.Context, userID, id uint) error
	SetDefault(ctx context.Context, userID, id uint) (*model.Address, error)
}

type addressServiceImpl struct {
	db          *gorm.DB
	addressRepo repository.AddressRepository
}

func NewAddressService(db *gorm.DB, addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{
		db:          db,
		addressRepo: addressRepo,
	}
}

func (s *addressServiceImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Address, error) {
	return s.addressRepo.FindAllByUser(ctx, userID)
}

func (s *addressServiceImpl) Create(ctx context.Context, userID uint, req *dto.AddressRequest) (*model.Address, error) {
	address := &model.Address{
		UserID:      userID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		AddressLine: req.AddressLine,
		City:        req.City,
		PostalCode:  req.PostalCode,
		IsDefault:   req.IsDefault != nil && *req.IsDefault,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := s.addressRepo.ClearOtherDefaults(ctx, tx, userID, 0); err != nil {
				return fmt.Errorf("clear existing defaults: %w", err)
			}
		}
		return s.addressRepo.Create(ctx, tx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (s *addressServiceImpl) Update(ctx context.Context, userID, id uint, req *dto.AddressRequest) (*model.Address, error) {
	address, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	address.FullName = req.FullName
	address.PhoneNumber = req.PhoneNumber
	address.AddressLine = req.AddressLine
	address.City = req.City
	address.PostalCode = req.PostalCode

	becomesDefault := req.IsDefault != nil && *req.IsDefault && !address.IsDefault
	if req.IsDefault != nil {
		// true -> false is allowed and leaves the owner with no default
		address.IsDefault = *req.IsDefault
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if becomesDefault {
			if err := s.addressRepo.ClearOtherDefaults(ctx, tx, userID, id); err != nil {
				return fmt.Errorf("clear existing defaults: %w", err)
			}
		}
		return s.addressRepo.Save(ctx, tx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// Delete removes the address. When it was the default no successor is
// elected; the owner picks a new default explicitly.
func (s *addressServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	address, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.addressRepo.Delete(ctx, s.db, address)
}

func (s *addressServiceImpl) SetDefault(ctx context.Context, userID, id uint) (*model.Address, error) {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.addressRepo.EnsureSoleDefault(ctx, tx, userID, id)
	})
	if err != nil {
		return nil, err
	}

	return s.findOwned(ctx, userID, id)
}

func (s *addressServiceImpl) findOwned(ctx context.Context, userID, id uint) (*model.Address, error) {
	address, err := s.addressRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return address, nil
}
