package services

import (
	"context"
	"errors"
	"log"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/config"
	"barangay-hub/internal/core/domain"
	"barangay-hub/internal/pkg/jwt"
	"barangay-hub/internal/pkg/password"
	"barangay-hub/internal/pkg/qr"

	"gorm.io/gorm"
)

// AuthService handles account registration, the two login paths and
// the admin approval workflow.
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResult carries the registration outcome and the login QR
type RegisterResult struct {
	Message string
	QRCode  string
}

// LoginResult represents a successful login
type LoginResult struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// Register creates a new account. Regular users are approved
// immediately; admin accounts start out pending until an existing
// admin decides the request.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	if input.Role != models.RoleUser && input.Role != models.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}

	// 1. Check if username already exists
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUsernameTaken
	}

	// 2. Hash password
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Generate login QR (payload carries the username only)
	_, qrCode, err := qr.Issue(input.Username)
	if err != nil {
		return nil, err
	}

	// 4. Derive initial status from role
	status := models.StatusApproved
	if input.Role == models.RoleAdmin {
		status = models.StatusPending
	}

	// 5. Persist. The unique index is the authority on duplicates, so
	// a concurrent registration for the same username loses here.
	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Role:     input.Role,
		Status:   status,
		QRCode:   qrCode,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	msg := "User account created successfully."
	if input.Role == models.RoleAdmin {
		msg = "Admin account request submitted. Awaiting approval."
	}

	log.Printf("✅ Account registered: %s (role: %s, status: %s)", user.Username, user.Role, user.Status)

	return &RegisterResult{Message: msg, QRCode: qrCode}, nil
}

// Login authenticates a user by username and password
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	user, err := s.getGatedUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	log.Printf("✅ User logged in: %s", user.Username)
	return s.buildLoginResult(user)
}

// LoginWithQR authenticates a user from a scanned QR payload. The
// payload carries no secret, so beyond the approval gate there is
// nothing to verify; presenting a known username is enough.
func (s *AuthService) LoginWithQR(ctx context.Context, username string) (*LoginResult, error) {
	user, err := s.getGatedUser(ctx, username)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in via QR: %s", user.Username)
	return s.buildLoginResult(user)
}

// ListPendingAdmins returns admin account requests awaiting a decision
func (s *AuthService) ListPendingAdmins(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListPendingAdmins(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}

// DecideApproval applies an approve/reject decision to a pending admin
// request. Approved and rejected are terminal: deciding an account
// that is not a pending admin fails instead of overwriting.
func (s *AuthService) DecideApproval(ctx context.Context, username, decision string) error {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return domain.ErrInvalidDecision
	}

	rows, err := s.userRepo.UpdateStatusIfPending(ctx, username, decision)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Disambiguate: unknown account vs already-decided request.
		if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		return domain.ErrDecisionAlreadyMade
	}

	log.Printf("✅ Admin request decided: %s -> %s", username, decision)
	return nil
}

// GetQRCode returns the login QR issued for the account at registration
func (s *AuthService) GetQRCode(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	return user.QRCode, nil
}

// getGatedUser loads an account and applies the admin approval gate
// shared by both login paths.
func (s *AuthService) getGatedUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.IsAdmin() && user.Status == models.StatusRejected {
		return nil, domain.ErrAccountRejected
	}
	if user.IsAdmin() && user.Status != models.StatusApproved {
		return nil, domain.ErrAccountNotApproved
	}

	return user, nil
}

func (s *AuthService) buildLoginResult(user *models.User) (*LoginResult, error) {
	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Username:    user.Username,
		Role:        user.Role,
		AccessToken: token,
	}, nil
}
