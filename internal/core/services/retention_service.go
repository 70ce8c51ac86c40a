package services

import (
	"context"
	"log"
	"time"

	"barangay-hub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// RetentionService trims old resident activity entries on a schedule.
// The activity feed only ever shows the most recent entries, so the
// table would otherwise grow without bound.
type RetentionService struct {
	cron          *cron.Cron
	activityRepo  repositories.ActivityRepository
	retentionDays int
}

// NewRetentionService creates a new retention service
func NewRetentionService(activityRepo repositories.ActivityRepository, retentionDays int) *RetentionService {
	return &RetentionService{
		cron:          cron.New(),
		activityRepo:  activityRepo,
		retentionDays: retentionDays,
	}
}

// Start schedules the nightly purge (02:30 daily)
func (s *RetentionService) Start() {
	_, err := s.cron.AddFunc("30 2 * * *", s.PurgeOldActivities)
	if err != nil {
		log.Printf("⚠️ Failed to schedule activity retention job: %v", err)
		return
	}
	s.cron.Start()
	log.Printf("✅ Activity retention job scheduled (keep %d days)", s.retentionDays)
}

// Stop stops the scheduler
func (s *RetentionService) Stop() {
	s.cron.Stop()
}

// PurgeOldActivities removes activity entries past the retention window
func (s *RetentionService) PurgeOldActivities() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	removed, err := s.activityRepo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Printf("⚠️ Activity retention purge failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("🧹 Purged %d activity entries older than %s", removed, cutoff.Format("2006-01-02"))
	}
}
