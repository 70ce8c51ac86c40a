package handlers

import (
	"errors"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/core/domain"
	"barangay-hub/internal/core/services"
	"barangay-hub/internal/pkg/csvutil"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ResidentHandler handles resident record endpoints
type ResidentHandler struct {
	residentService *services.ResidentService
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService *services.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

// Create handles POST /residents
func (h *ResidentHandler) Create(c *fiber.Ctx) error {
	var resident models.Resident
	if err := c.BodyParser(&resident); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if resident.FirstName == "" || resident.LastName == "" {
		return response.BadRequest(c, "First name and last name required")
	}

	if err := h.residentService.Create(c.Context(), &resident); err != nil {
		return response.InternalServerError(c, "Failed to save resident")
	}

	return response.Created(c, "Resident saved successfully")
}

// BulkCreate handles POST /residents/bulk (frontend import flow)
func (h *ResidentHandler) BulkCreate(c *fiber.Ctx) error {
	var residents []*models.Resident
	if err := c.BodyParser(&residents); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.residentService.BulkCreate(c.Context(), residents); err != nil {
		return response.InternalServerError(c, "Failed to import residents")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Residents imported successfully",
		"data":    residents,
	})
}

// List handles GET /residents
func (h *ResidentHandler) List(c *fiber.Ctx) error {
	residents, err := h.residentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch residents")
	}

	return c.JSON(residents)
}

// RecentActivities handles GET /residents/recent-activities
func (h *ResidentHandler) RecentActivities(c *fiber.Ctx) error {
	activities, err := h.residentService.RecentActivities(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recent activities")
	}

	return c.JSON(activities)
}

// Export handles GET /residents/export
func (h *ResidentHandler) Export(c *fiber.Ctx) error {
	residents, err := h.residentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export residents")
	}
	if len(residents) == 0 {
		return response.NotFound(c, "No residents found")
	}

	return csvutil.Send(c, "residents.csv", &residents)
}

// Get handles GET /residents/:id
func (h *ResidentHandler) Get(c *fiber.Ctx) error {
	resident, err := h.residentService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrResidentNotFound) {
			return response.NotFound(c, "Resident not found")
		}
		return response.InternalServerError(c, "Failed to fetch resident")
	}

	return c.JSON(resident)
}

// Update handles PUT /residents/:id
func (h *ResidentHandler) Update(c *fiber.Ctx) error {
	var resident models.Resident
	if err := c.BodyParser(&resident); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.residentService.Update(c.Context(), c.Params("id"), &resident)
	if err != nil {
		if errors.Is(err, domain.ErrResidentNotFound) {
			return response.NotFound(c, "Resident not found")
		}
		return response.InternalServerError(c, "Failed to update resident")
	}

	return response.Send(c, fiber.StatusOK, "Resident updated successfully")
}

// Delete handles DELETE /residents/:id
func (h *ResidentHandler) Delete(c *fiber.Ctx) error {
	err := h.residentService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrResidentNotFound) {
			return response.NotFound(c, "Resident not found")
		}
		return response.InternalServerError(c, "Failed to delete resident")
	}

	return response.Send(c, fiber.StatusOK, "Resident deleted successfully")
}
