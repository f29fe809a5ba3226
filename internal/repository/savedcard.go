package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

type SavedCardRepository interface {
	FindAllByUser(ctx context.Context, userID uint) ([]*model.SavedCard, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.SavedCard, error)
	Create(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error
	Save(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error
	Delete(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error
	ClearOtherDefaults(ctx context.Context, tx *gorm.DB, userID, keepID uint) error
	EnsureSoleDefault(ctx context.Context, tx *gorm.DB, userID, candidateID uint) error
}

type savedCardRepoImpl struct {
	db *gorm.DB
}

func NewSavedCardRepository(db *gorm.DB) SavedCardRepository {
	return &savedCardRepoImpl{
		db: db,
	}
}

func (r *savedCardRepoImpl) FindAllByUser(ctx context.Context, userID uint) ([]*model.SavedCard, error) {
	var cards []*model.SavedCard
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&cards).Error

	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *savedCardRepoImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.SavedCard, error) {
	var card model.SavedCard
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&card).Error

	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *savedCardRepoImpl) Create(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error {
	return tx.WithContext(ctx).Create(card).Error
}

func (r *savedCardRepoImpl) Save(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error {
	return tx.WithContext(ctx).Save(card).Error
}

func (r *savedCardRepoImpl) Delete(ctx context.Context, tx *gorm.DB, card *model.SavedCard) error {
	return tx.WithContext(ctx).Delete(card).Error
}

func (r *savedCardRepoImpl) ClearOtherDefaults(ctx context.Context, tx *gorm.DB, userID, keepID uint) error {
	return clearOtherDefaults[model.SavedCard](ctx, tx, userID, keepID)
}

func (r *savedCardRepoImpl) EnsureSoleDefault(ctx context.Context, tx *gorm.DB, userID, candidateID uint) error {
	return ensureSoleDefault[model.SavedCard](ctx, tx, userID, candidateID)
}
