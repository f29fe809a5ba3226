package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

// flaggable covers the record families that carry a per-user default flag.
type flaggable interface {
	model.Address | model.SavedCard
}

// clearOtherDefaults drops the default flag on every record of the owner
// except keepID, as a single conditional UPDATE. It clears every match, not
// just the first, so data that somehow ended up with two defaults is healed
// rather than tripped over. Pass keepID 0 to clear all of them.
func clearOtherDefaults[T flaggable](ctx context.Context, tx *gorm.DB, userID, keepID uint) error {
	var rec T
	return tx.WithContext(ctx).Model(&rec).
		Where("user_id = ? AND is_default = ? AND id <> ?", userID, true, keepID).
		Update("is_default", false).Error
}

// ensureSoleDefault makes candidateID the single defaulted record of the
// owner. Safe to call when it already is: both passes then match nothing.
// Zero affected rows is not an error — mysql reports changed rows, not
// matched rows, so a no-op set is indistinguishable from a missing record;
// callers verify existence and ownership before calling. Must run inside the
// caller's transaction so the clear and the set land together.
func ensureSoleDefault[T flaggable](ctx context.Context, tx *gorm.DB, userID, candidateID uint) error {
	if err := clearOtherDefaults[T](ctx, tx, userID, candidateID); err != nil {
		return err
	}

	var rec T
	return tx.WithContext(ctx).Model(&rec).
		Where("user_id = ? AND id = ? AND is_default = ?", userID, candidateID, false).
		Update("is_default", true).Error
}
