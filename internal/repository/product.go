package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error)
	Save(ctx context.Context, product *model.Product) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error) {
	if tx == nil {
		tx = r.db
	}

	var product model.Product
	err := tx.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}
