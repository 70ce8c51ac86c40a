package repositories

import (
	"context"
	"time"

	"barangay-hub/internal/adapters/persistence/models"
)

// UserRepository defines the account store interface. The unique index
// on username makes the store the authority for duplicate registration,
// and the conditional status update keeps approval decisions atomic.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListPendingAdmins(ctx context.Context) ([]*models.User, error)
	// UpdateStatusIfPending transitions a pending admin account to the
	// given status. It returns the number of rows changed: zero means
	// the account is absent, not an admin, or already decided.
	UpdateStatusIfPending(ctx context.Context, username, status string) (int64, error)
}

// ResidentRepository defines the resident store interface
type ResidentRepository interface {
	Create(ctx context.Context, resident *models.Resident) error
	List(ctx context.Context) ([]*models.Resident, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.Resident, error)
	Update(ctx context.Context, resident *models.Resident) error
	Delete(ctx context.Context, publicID string) error
}

// ActivityRepository defines the append-only resident activity log
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.ResidentActivity) error
	ListRecent(ctx context.Context, limit int) ([]*models.ResidentActivity, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
