package repositories

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AnnouncementRepository handles announcement persistence
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// List lists all announcements, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.WithContext(ctx).Order("date DESC").Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListRecent lists the most recent announcements, newest first
func (r *AnnouncementRepository) ListRecent(ctx context.Context, limit int) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.WithContext(ctx).Order("date DESC").Limit(limit).Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Delete deletes an announcement by ID
func (r *AnnouncementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Announcement{}, id).Error
}
