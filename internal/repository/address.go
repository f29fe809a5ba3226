package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

type AddressRepository interface {
	// FindAllByUser returns the owner's addresses, default first, newest next.
	FindAllByUser(ctx context.Context, userID uint) ([]*model.Address, error)
	// FindByIDAndUser scopes the lookup to the owner's partition; a record
	// that exists but belongs to someone else reads as not found.
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Address, error)
	Create(ctx context.Context, tx *gorm.DB, address *model.Address) error
	Save(ctx context.Context, tx *gorm.DB, address *model.Address) error
	Delete(ctx context.Context, tx *gorm.DB, address *model.Address) error
	ClearOtherDefaults(ctx context.Context, tx *gorm.DB, userID, keepID uint) error
	EnsureSoleDefault(ctx context.Context, tx *gorm.DB, userID, candidateID uint) error
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) FindAllByUser(ctx context.Context, userID uint) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepoImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error

	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressRepoImpl) Create(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	return tx.WithContext(ctx).Create(address).Error
}

func (r *addressRepoImpl) Save(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	return tx.WithContext(ctx).Save(address).Error
}

func (r *addressRepoImpl) Delete(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	return tx.WithContext(ctx).Delete(address).Error
}

func (r *addressRepoImpl) ClearOtherDefaults(ctx context.Context, tx *gorm.DB, userID, keepID uint) error {
	return clearOtherDefaults[model.Address](ctx, tx, userID, keepID)
}

func (r *addressRepoImpl) EnsureSoleDefault(ctx context.Context, tx *gorm.DB, userID, candidateID uint) error {
	return ensureSoleDefault[model.Address](ctx, tx, userID, candidateID)
}
