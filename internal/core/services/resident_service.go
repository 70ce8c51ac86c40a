package services

import (
	"context"
	"errors"
	"log"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentActivityLimit caps the dashboard activity feed
const recentActivityLimit = 5

// ResidentService handles resident records and their activity log
type ResidentService struct {
	residentRepo repositories.ResidentRepository
	activityRepo repositories.ActivityRepository
}

// NewResidentService creates a new resident service
func NewResidentService(residentRepo repositories.ResidentRepository, activityRepo repositories.ActivityRepository) *ResidentService {
	return &ResidentService{
		residentRepo: residentRepo,
		activityRepo: activityRepo,
	}
}

// Create stores a new resident and logs the addition
func (s *ResidentService) Create(ctx context.Context, resident *models.Resident) error {
	resident.PublicID = uuid.New().String()
	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return err
	}

	s.logActivity(ctx, models.ActivityAdded, resident.FullName())
	return nil
}

// BulkCreate imports residents one by one, logging each addition.
// Used by the CSV/XLSX import flow on the frontend.
func (s *ResidentService) BulkCreate(ctx context.Context, residents []*models.Resident) error {
	for _, resident := range residents {
		if err := s.Create(ctx, resident); err != nil {
			return err
		}
	}
	return nil
}

// List lists all residents
func (s *ResidentService) List(ctx context.Context) ([]*models.Resident, error) {
	return s.residentRepo.List(ctx)
}

// Get returns a resident by public UUID
func (s *ResidentService) Get(ctx context.Context, publicID string) (*models.Resident, error) {
	resident, err := s.residentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, err
	}
	return resident, nil
}

// Update replaces a resident's profile fields and logs the update
func (s *ResidentService) Update(ctx context.Context, publicID string, updated *models.Resident) error {
	existing, err := s.Get(ctx, publicID)
	if err != nil {
		return err
	}

	existing.FirstName = updated.FirstName
	existing.MiddleName = updated.MiddleName
	existing.LastName = updated.LastName
	existing.DOB = updated.DOB
	existing.Age = updated.Age
	existing.Sex = updated.Sex
	existing.Address = updated.Address
	existing.Contact = updated.Contact
	existing.CivilStatus = updated.CivilStatus
	existing.Occupation = updated.Occupation
	existing.VoterStatus = updated.VoterStatus
	existing.SpecialCategory = updated.SpecialCategory

	if err := s.residentRepo.Update(ctx, existing); err != nil {
		return err
	}

	s.logActivity(ctx, models.ActivityUpdated, existing.FullName())
	return nil
}

// Delete removes a resident and logs the deletion
func (s *ResidentService) Delete(ctx context.Context, publicID string) error {
	existing, err := s.Get(ctx, publicID)
	if err != nil {
		return err
	}

	if err := s.residentRepo.Delete(ctx, publicID); err != nil {
		return err
	}

	s.logActivity(ctx, models.ActivityDeleted, existing.FullName())
	return nil
}

// RecentActivities returns the latest resident activity entries
func (s *ResidentService) RecentActivities(ctx context.Context) ([]*models.ResidentActivity, error) {
	return s.activityRepo.ListRecent(ctx, recentActivityLimit)
}

// logActivity appends an audit entry. Logging is fire-and-forget: a
// failure here must never fail the resident write that triggered it.
func (s *ResidentService) logActivity(ctx context.Context, action, residentName string) {
	activity := &models.ResidentActivity{
		Action:       action,
		ResidentName: residentName,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		log.Printf("⚠️ Failed to log resident activity: %v", err)
	}
}
