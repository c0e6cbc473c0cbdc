package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/config"
	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/services"
)

type ReportHandler struct {
	interviewService services.InterviewService
}

func NewReportHandler(interviewService services.InterviewService) *ReportHandler {
	return &ReportHandler{
		interviewService: interviewService,
	}
}

// HandleGenerateReport handles GET /generate_report.
func (h *ReportHandler) HandleGenerateReport(c *fiber.Ctx) error {
	if h.interviewService.ReportMode() == config.ReportModePlain {
		return h.plainReport(c)
	}

	report, err := h.interviewService.GenerateReport(c.UserContext())
	if err != nil {
		log.Printf("⚠️  Report degraded to defaults: %v\n", err)
	}

	return c.JSON(report)
}

func (h *ReportHandler) plainReport(c *fiber.Ctx) error {
	report, err := h.interviewService.GeneratePerformanceReport(c.UserContext())
	switch {
	case errors.Is(err, services.ErrNoHistory):
		return c.JSON(models.NoHistoryResponse{Error: "No history"})
	case err != nil:
		return c.JSON(models.NoHistoryResponse{Error: "Report generation failed"})
	}

	return c.JSON(report)
}
