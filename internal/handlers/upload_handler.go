package handlers

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/services"
)

type UploadHandler struct {
	interviewService services.InterviewService
	maxFileSize      int64
}

func NewUploadHandler(interviewService services.InterviewService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
	}
}

// HandleUpload handles POST /upload. Only a request without a file is
// rejected; every other failure resets the session and answers 200 with the
// default ATS report.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	report, err := h.processUpload(c, file)
	if err != nil {
		log.Printf("⚠️  Upload degraded: %v\n", err)
	}

	return c.JSON(models.UploadResponse{
		Message:   "Resume processed!",
		ATSReport: report,
	})
}

func (h *UploadHandler) processUpload(c *fiber.Ctx, file *multipart.FileHeader) (models.ATSReport, error) {
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		err := fmt.Errorf("%w: %d bytes, max %d", services.ErrFileTooLarge, file.Size, h.maxFileSize)
		return h.interviewService.DiscardUpload(err), err
	}

	src, err := file.Open()
	if err != nil {
		err = fmt.Errorf("failed to open uploaded file: %w", err)
		return h.interviewService.DiscardUpload(err), err
	}
	defer src.Close()

	return h.interviewService.ProcessResume(c.UserContext(), src)
}
