package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root returns basic API info
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "Barangay Hub API",
		"version": "1.0",
		"status":  "running",
	})
}

// HealthCheck reports service and database health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "down",
		})
	}

	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "up",
	})
}
