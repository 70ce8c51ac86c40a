package handlers

import (
	"errors"
	"strings"

	"barangay-hub/internal/core/domain"
	"barangay-hub/internal/core/services"
	"barangay-hub/internal/pkg/qr"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles account and login endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// QRLoginRequest carries the decoded QR payload scanned by the client
type QRLoginRequest struct {
	QRData qr.Payload `json:"qrData"`
}

// Register handles POST /users
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" || req.Role == "" {
		return response.BadRequest(c, "Username, password, and role required")
	}

	input := &services.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		Role:     req.Role,
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return response.BadRequest(c, "Username exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Role must be 'user' or 'admin'")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": result.Message,
		"qrCode":  result.QRCode,
	})
}

// Login handles POST /users/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if handled := h.mapLoginError(c, err); handled != nil {
			return handled
		}
		return response.InternalServerError(c, "Login failed")
	}

	return c.JSON(fiber.Map{
		"message":     "Login successful",
		"username":    result.Username,
		"role":        result.Role,
		"accessToken": result.AccessToken,
	})
}

// LoginWithQR handles POST /users/login-with-qr. The client submits
// the payload it decoded from the scanned image.
func (h *AuthHandler) LoginWithQR(c *fiber.Ctx) error {
	var req QRLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.QRData.Username == "" {
		return response.BadRequest(c, "QR data required")
	}

	result, err := h.authService.LoginWithQR(c.Context(), req.QRData.Username)
	if err != nil {
		if handled := h.mapLoginError(c, err); handled != nil {
			return handled
		}
		return response.InternalServerError(c, "QR login failed")
	}

	return c.JSON(fiber.Map{
		"message":     "QR login successful",
		"username":    result.Username,
		"role":        result.Role,
		"accessToken": result.AccessToken,
	})
}

// GetQRCode handles GET /users/:username/qr
func (h *AuthHandler) GetQRCode(c *fiber.Ctx) error {
	qrCode, err := h.authService.GetQRCode(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch QR code")
	}

	return c.JSON(fiber.Map{"qrCode": qrCode})
}

// mapLoginError maps the domain login failures shared by both login
// paths. Each failure keeps its own status and message so clients can
// tell a wrong password from a pending approval.
func (h *AuthHandler) mapLoginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	case errors.Is(err, domain.ErrAccountRejected):
		return response.Forbidden(c, "Admin account has been rejected")
	case errors.Is(err, domain.ErrAccountNotApproved):
		return response.Forbidden(c, "Admin account not approved yet")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid credentials")
	default:
		return nil
	}
}
