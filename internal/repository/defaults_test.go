package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
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

func seedAddress(t *testing.T, db *gorm.DB, userID uint, isDefault bool) *model.Address {
	t.Helper()

	address := &model.Address{UserID: userID, FullName: "Alice Smith", IsDefault: isDefault}
	require.NoError(t, db.Create(address).Error)
	return address
}

func defaultCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&count).Error)
	return count
}

func TestEnsureSoleDefault_MovesFlag(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := seedAddress(t, db, 1, true)
	b := seedAddress(t, db, 1, false)

	require.NoError(t, ensureSoleDefault[model.Address](ctx, db, 1, b.ID))

	var reloadedA, reloadedB model.Address
	require.NoError(t, db.First(&reloadedA, a.ID).Error)
	assert.False(t, reloadedA.IsDefault)
	require.NoError(t, db.First(&reloadedB, b.ID).Error)
	assert.True(t, reloadedB.IsDefault)
	assert.EqualValues(t, 1, defaultCount(t, db, 1))
}

func TestEnsureSoleDefault_RepeatOnCurrentDefault(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := seedAddress(t, db, 1, true)
	seedAddress(t, db, 1, false)

	// the candidate already holds the flag: both passes match zero rows,
	// which must read as success, not as a missing record
	require.NoError(t, ensureSoleDefault[model.Address](ctx, db, 1, a.ID))
	require.NoError(t, ensureSoleDefault[model.Address](ctx, db, 1, a.ID))

	var reloaded model.Address
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	assert.True(t, reloaded.IsDefault)
	assert.EqualValues(t, 1, defaultCount(t, db, 1))
}

func TestEnsureSoleDefault_HealsDoubleDefault(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := seedAddress(t, db, 1, true)
	b := seedAddress(t, db, 1, true)

	require.NoError(t, ensureSoleDefault[model.Address](ctx, db, 1, a.ID))

	var reloadedA, reloadedB model.Address
	require.NoError(t, db.First(&reloadedA, a.ID).Error)
	assert.True(t, reloadedA.IsDefault)
	require.NoError(t, db.First(&reloadedB, b.ID).Error)
	assert.False(t, reloadedB.IsDefault)
}
