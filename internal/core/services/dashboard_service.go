package services

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates record counts for the admin dashboard
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary holds the aggregate counts shown on the dashboard
type Summary struct {
	Residents          int64            `json:"residents"`
	Announcements      int64            `json:"announcements"`
	EmergencyContacts  int64            `json:"emergencyContacts"`
	PendingAdminCount  int64            `json:"pendingAdminRequests"`
	ComplaintsByStatus map[string]int64 `json:"complaintsByStatus"`
}

// GetSummary computes the dashboard counts
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		ComplaintsByStatus: make(map[string]int64),
	}

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Resident{}).Count(&summary.Residents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Announcement{}).Count(&summary.Announcements).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.EmergencyContact{}).Count(&summary.EmergencyContacts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleAdmin, models.StatusPending).
		Count(&summary.PendingAdminCount).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := db.Model(&models.Complaint{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		summary.ComplaintsByStatus[row.Status] = row.Count
	}

	return summary, nil
}
