package handlers

import (
	"barangay-hub/internal/core/services"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboardService.GetSummary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch dashboard summary")
	}

	return c.JSON(summary)
}
