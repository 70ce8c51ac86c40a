package config

import (
	"log"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/pkg/password"
	"barangay-hub/internal/pkg/qr"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultAdmin(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultAdmin creates the bootstrap admin account so the approval
// queue always has at least one approver. Change the password after
// first login.
func (s *Seeder) seedDefaultAdmin() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Default admin exists")
		return nil
	}

	hashed, err := password.Hash("admin")
	if err != nil {
		return err
	}

	_, qrCode, err := qr.Issue("admin")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Password: hashed,
		Role:     models.RoleAdmin,
		Status:   models.StatusApproved,
		QRCode:   qrCode,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("✅ Default admin account created")
	return nil
}
