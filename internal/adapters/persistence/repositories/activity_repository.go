package repositories

import (
	"context"
	"time"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends an activity entry
func (r *activityRepository) Create(ctx context.Context, activity *models.ResidentActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListRecent lists the most recent activity entries, newest first
func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*models.ResidentActivity, error) {
	var activities []*models.ResidentActivity
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// DeleteOlderThan removes activity entries older than the cutoff
func (r *activityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&models.ResidentActivity{})
	return result.RowsAffected, result.Error
}
