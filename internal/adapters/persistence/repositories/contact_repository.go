package repositories

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ContactRepository handles emergency contact persistence
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new emergency contact
func (r *ContactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// List lists all emergency contacts
func (r *ContactRepository) List(ctx context.Context) ([]*models.EmergencyContact, error) {
	var contacts []*models.EmergencyContact
	err := r.db.WithContext(ctx).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
