package handlers

import (
	"strconv"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/pkg/csvutil"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// recentAnnouncementLimit caps the homepage announcement feed
const recentAnnouncementLimit = 5

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementRepo *repositories.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{announcementRepo: announcementRepo}
}

// Create handles POST /announcements
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var announcement models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if announcement.Title == "" {
		return response.BadRequest(c, "Title required")
	}

	if err := h.announcementRepo.Create(c.Context(), &announcement); err != nil {
		return response.InternalServerError(c, "Failed to post announcement")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Announcement posted successfully",
		"announcement": announcement,
	})
}

// List handles GET /announcements
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch announcements")
	}

	return c.JSON(announcements)
}

// Recent handles GET /announcements/recent
func (h *AnnouncementHandler) Recent(c *fiber.Ctx) error {
	announcements, err := h.announcementRepo.ListRecent(c.Context(), recentAnnouncementLimit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recent announcements")
	}

	return c.JSON(announcements)
}

// Export handles GET /announcements/export
func (h *AnnouncementHandler) Export(c *fiber.Ctx) error {
	announcements, err := h.announcementRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export announcements")
	}
	if len(announcements) == 0 {
		return response.NotFound(c, "No announcements found")
	}

	return csvutil.Send(c, "announcements.csv", &announcements)
}

// Delete handles DELETE /announcements/:id
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.announcementRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete announcement")
	}

	return response.Send(c, fiber.StatusOK, "Announcement deleted successfully")
}
