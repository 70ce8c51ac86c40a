package handlers

import (
	"errors"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/core/domain"
	"barangay-hub/internal/core/services"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin account approval queue
type AdminHandler struct {
	authService *services.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// DecisionRequest represents an approval decision body
type DecisionRequest struct {
	Status string `json:"status"`
}

// ListRequests handles GET /admin/requests
func (h *AdminHandler) ListRequests(c *fiber.Ctx) error {
	pending, err := h.authService.ListPendingAdmins(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch pending admins")
	}

	return c.JSON(pending)
}

// Decide handles PUT /admin/requests/:username/approve
func (h *AdminHandler) Decide(c *fiber.Ctx) error {
	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	username := c.Params("username")

	err := h.authService.DecideApproval(c.Context(), username, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDecision):
			return response.BadRequest(c, "Status must be 'approved' or 'rejected'")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrDecisionAlreadyMade):
			return response.Conflict(c, "Admin request already decided")
		default:
			return response.InternalServerError(c, "Failed to update admin status")
		}
	}

	message := "Admin rejected successfully"
	if req.Status == models.StatusApproved {
		message = "Admin approved successfully"
	}

	return response.Send(c, fiber.StatusOK, message)
}
