package handlers

import (
	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/pkg/csvutil"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContactHandler handles emergency contact endpoints
type ContactHandler struct {
	contactRepo *repositories.ContactRepository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactRepo *repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// Create handles POST /emergency-contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var contact models.EmergencyContact
	if err := c.BodyParser(&contact); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if contact.Name == "" || contact.Phone == "" {
		return response.BadRequest(c, "Name and phone required")
	}

	if contact.PublicID == "" {
		contact.PublicID = uuid.New().String()
	}

	if err := h.contactRepo.Create(c.Context(), &contact); err != nil {
		return response.InternalServerError(c, "Failed to save emergency contact")
	}

	return response.Created(c, "Emergency contact saved successfully")
}

// List handles GET /emergency-contacts
func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contactRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch emergency contacts")
	}

	return c.JSON(contacts)
}

// Export handles GET /emergency-contacts/export
func (h *ContactHandler) Export(c *fiber.Ctx) error {
	contacts, err := h.contactRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export emergency contacts")
	}
	if len(contacts) == 0 {
		return response.NotFound(c, "No emergency contacts found")
	}

	return csvutil.Send(c, "emergency_contacts.csv", &contacts)
}
