package handlers

import (
	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintRepo *repositories.ComplaintRepository
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintRepo *repositories.ComplaintRepository) *ComplaintHandler {
	return &ComplaintHandler{complaintRepo: complaintRepo}
}

// UpdateStatusRequest represents a complaint status change body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /complaints
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var complaint models.Complaint
	if err := c.BodyParser(&complaint); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if complaint.Name == "" || complaint.Message == "" {
		return response.BadRequest(c, "Name and message required")
	}

	if complaint.PublicID == "" {
		complaint.PublicID = uuid.New().String()
	}

	if err := h.complaintRepo.Create(c.Context(), &complaint); err != nil {
		return response.InternalServerError(c, "Failed to save complaint")
	}

	return response.Created(c, "Complaint saved successfully")
}

// List handles GET /complaints
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	complaints, err := h.complaintRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch complaints")
	}

	return c.JSON(complaints)
}

// UpdateStatus handles PUT /complaints/:id
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rows, err := h.complaintRepo.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return response.InternalServerError(c, "Failed to update complaint status")
	}
	if rows == 0 {
		return response.NotFound(c, "Complaint not found")
	}

	return response.Send(c, fiber.StatusOK, "Complaint status updated successfully")
}

// Delete handles DELETE /complaints/:id
func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	rows, err := h.complaintRepo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete complaint")
	}
	if rows == 0 {
		return response.NotFound(c, "Complaint not found")
	}

	return response.Send(c, fiber.StatusOK, "Complaint deleted successfully")
}
