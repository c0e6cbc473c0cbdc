package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/services"
)

type DashboardHandler struct {
	interviewService services.InterviewService
}

func NewDashboardHandler(interviewService services.InterviewService) *DashboardHandler {
	return &DashboardHandler{
		interviewService: interviewService,
	}
}

// HandleDashboard handles GET /dashboard.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	return c.JSON(h.interviewService.Dashboard(c.UserContext()))
}
