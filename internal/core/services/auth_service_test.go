package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/config"
	"barangay-hub/internal/core/domain"
	"barangay-hub/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository. Create enforces the
// username uniqueness the MySQL unique index provides in production.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) ListPendingAdmins(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pending []*models.User
	for _, user := range f.users {
		if user.Role == models.RoleAdmin && user.Status == models.StatusPending {
			copied := *user
			pending = append(pending, &copied)
		}
	}
	return pending, nil
}

func (f *fakeUserRepo) UpdateStatusIfPending(ctx context.Context, username, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[username]
	if !ok || user.Role != models.RoleAdmin || user.Status != models.StatusPending {
		return 0, nil
	}
	user.Status = status
	return 1, nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
	return NewAuthService(repo, cfg)
}

func TestRegisterUserIsApprovedImmediately(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "User account created successfully.", result.Message)
	assert.True(t, strings.HasPrefix(result.QRCode, "data:image/png;base64,"))

	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.NotEqual(t, "pw123", stored.Password)

	login, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, models.RoleUser, login.Role)
	require.NotEmpty(t, login.AccessToken)

	claims, err := jwt.ValidateAccessToken(login.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Username: "alice", Password: "other", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Still exactly one account, unchanged
	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Len(t, repo.users, 1)
}

func TestRegisterConcurrentSameUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), &RegisterInput{
				Username: "race", Password: "pw123", Role: models.RoleUser,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, repo.users, 1)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "x", Password: "pw", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost", "pw123")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminApprovalFlow(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{Username: "kap", Password: "pw123", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Admin account request submitted. Awaiting approval.", result.Message)

	stored, err := repo.GetByUsername(ctx, "kap")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	// Pending admin cannot log in, even with the right password
	_, err = svc.Login(ctx, "kap", "pw123")
	assert.ErrorIs(t, err, domain.ErrAccountNotApproved)

	// Request shows up in the review queue, without secrets
	pending, err := svc.ListPendingAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "kap", pending[0].Username)
	assert.Equal(t, models.StatusPending, pending[0].Status)

	// Approve, then login succeeds
	require.NoError(t, svc.DecideApproval(ctx, "kap", models.StatusApproved))

	login, err := svc.Login(ctx, "kap", "pw123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, login.Role)

	// Queue is drained
	pending, err = svc.ListPendingAdmins(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAdminRejectionIsTerminal(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Username: "kap", Password: "pw123", Role: models.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, svc.DecideApproval(ctx, "kap", models.StatusRejected))

	_, err = svc.Login(ctx, "kap", "pw123")
	assert.ErrorIs(t, err, domain.ErrAccountRejected)

	// A later approval must not flip a rejected account
	err = svc.DecideApproval(ctx, "kap", models.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrDecisionAlreadyMade)

	stored, err := repo.GetByUsername(ctx, "kap")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
}

func TestDecideApprovalValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DecideApproval(ctx, "kap", "maybe"), domain.ErrInvalidDecision)
	assert.ErrorIs(t, svc.DecideApproval(ctx, "ghost", models.StatusApproved), domain.ErrUserNotFound)

	// Regular users never enter the approval machine
	_, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DecideApproval(ctx, "alice", models.StatusApproved), domain.ErrDecisionAlreadyMade)
}

func TestLoginWithQR(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)

	// Same identity and role as password login, no secret involved
	qrLogin, err := svc.LoginWithQR(ctx, "alice")
	require.NoError(t, err)
	pwLogin, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, pwLogin.Username, qrLogin.Username)
	assert.Equal(t, pwLogin.Role, qrLogin.Role)

	_, err = svc.LoginWithQR(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginWithQRGatesAdmins(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Username: "kap", Password: "pw123", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.LoginWithQR(ctx, "kap")
	assert.ErrorIs(t, err, domain.ErrAccountNotApproved)

	require.NoError(t, svc.DecideApproval(ctx, "kap", models.StatusRejected))
	_, err = svc.LoginWithQR(ctx, "kap")
	assert.ErrorIs(t, err, domain.ErrAccountRejected)
}

func TestGetQRCode(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{Username: "alice", Password: "pw123", Role: models.RoleUser})
	require.NoError(t, err)

	qrCode, err := svc.GetQRCode(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, result.QRCode, qrCode)

	_, err = svc.GetQRCode(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
