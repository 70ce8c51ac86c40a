package repositories

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ComplaintRepository handles complaint persistence
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create creates a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// List lists all complaints
func (r *ComplaintRepository) List(ctx context.Context) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := r.db.WithContext(ctx).Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateStatus updates the status of a complaint by public UUID.
// Returns the number of rows changed (zero when absent).
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, publicID, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Complaint{}).
		Where("public_id = ?", publicID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// Delete deletes a complaint by public UUID.
// Returns the number of rows changed (zero when absent).
func (r *ComplaintRepository) Delete(ctx context.Context, publicID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&models.Complaint{})
	return result.RowsAffected, result.Error
}
