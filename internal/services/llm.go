package services

import (
	"context"
	"errors"
	"fmt"

	"mockmate/interview-api/internal/config"
)

var ErrLLMUnavailable = errors.New("language model is not configured")

// LLMService turns a prompt into a single text completion.
type LLMService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Embedder turns text into a vector for the knowledge base.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type disabledLLM struct {
	reason string
}

// NewDisabledLLM returns a model client whose every call fails, so that the
// callers take their fallback path.
func NewDisabledLLM(reason string) LLMService {
	return &disabledLLM{reason: reason}
}

// GenerateText implements LLMService.
func (d *disabledLLM) GenerateText(context.Context, string, float32) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrLLMUnavailable, d.reason)
}

// NewLLMService picks the chat provider from configuration. A missing key is
// not fatal: the service starts and every model call degrades.
func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return NewDisabledLLM("GEMINI_API_KEY missing"), nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		if cfg.GroqAPIKey == "" {
			return NewDisabledLLM("GROQ_API_KEY missing"), nil
		}
		return NewGroqService(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel), nil
	}
}
