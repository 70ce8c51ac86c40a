package repositories

import (
	"context"

	"barangay-hub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user. A concurrent insert with the same
// username surfaces as gorm.ErrDuplicatedKey via the unique index.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByUsername gets a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks if username exists
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ListPendingAdmins lists admin accounts awaiting an approval decision
func (r *userRepository) ListPendingAdmins(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND status = ?", models.RoleAdmin, models.StatusPending).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateStatusIfPending performs the approval transition as a single
// conditional UPDATE so a stale read can never overwrite a decision.
func (r *userRepository) UpdateStatusIfPending(ctx context.Context, username, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND role = ? AND status = ?", username, models.RoleAdmin, models.StatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
