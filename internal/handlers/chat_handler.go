package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/services"
)

var validate = validator.New()

type ChatHandler struct {
	interviewService services.InterviewService
}

func NewChatHandler(interviewService services.InterviewService) *ChatHandler {
	return &ChatHandler{
		interviewService: interviewService,
	}
}

// HandleChat handles POST /chat with a form field "question".
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "question is required")
	}

	reply, err := h.interviewService.Chat(c.UserContext(), req.Question)
	if err != nil && !errors.Is(err, services.ErrResumeNotLoaded) {
		log.Printf("⚠️  Chat degraded: %v\n", err)
	}

	return c.JSON(models.ChatResponse{Response: reply})
}
