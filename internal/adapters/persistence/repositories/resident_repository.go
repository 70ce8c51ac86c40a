package repositories

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// residentRepository implements ResidentRepository interface
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new resident repository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

// Create creates a new resident record
func (r *residentRepository) Create(ctx context.Context, resident *models.Resident) error {
	return r.db.WithContext(ctx).Create(resident).Error
}

// List lists all residents
func (r *residentRepository) List(ctx context.Context) ([]*models.Resident, error) {
	var residents []*models.Resident
	err := r.db.WithContext(ctx).Find(&residents).Error
	if err != nil {
		return nil, err
	}
	return residents, nil
}

// GetByPublicID gets a resident by public UUID
func (r *residentRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Resident, error) {
	var resident models.Resident
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&resident).Error
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

// Update saves the full resident record
func (r *residentRepository) Update(ctx context.Context, resident *models.Resident) error {
	return r.db.WithContext(ctx).Save(resident).Error
}

// Delete soft deletes a resident by public UUID
func (r *residentRepository) Delete(ctx context.Context, publicID string) error {
	return r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&models.Resident{}).Error
}
