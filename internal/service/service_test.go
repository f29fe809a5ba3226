package service

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, imageURL string, price string) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		ImageURL: imageURL,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func countRows[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var rec T
	var count int64
	require.NoError(t, db.Model(&rec).Count(&count).Error)
	return count
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
