package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/services"
)

// SetupRoutes mounts the public API on app.
func SetupRoutes(app *fiber.App, interviewService services.InterviewService, maxFileSize int64) {
	uploadHandler := NewUploadHandler(interviewService, maxFileSize)
	chatHandler := NewChatHandler(interviewService)
	dashboardHandler := NewDashboardHandler(interviewService)
	reportHandler := NewReportHandler(interviewService)

	app.Get("/", HandleHealth)
	app.Post("/upload", uploadHandler.HandleUpload)
	app.Post("/chat", chatHandler.HandleChat)
	app.Get("/dashboard", dashboardHandler.HandleDashboard)
	app.Get("/generate_report", reportHandler.HandleGenerateReport)
}

// HandleHealth handles GET /.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "alive",
		Message: "MockMate AI is ready!",
	})
}

// ErrorHandler renders errors returned by handlers as {error, code}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
