package services

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type groqService struct {
	client *resty.Client
	model  string
}

// NewGroqService talks to Groq's OpenAI-compatible chat completions API.
func NewGroqService(baseURL, apiKey, model string) LLMService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &groqService{
		client: client,
		model:  model,
	}
}

// GenerateText implements LLMService.
func (g *groqService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	body := map[string]any{
		"model":       g.model,
		"temperature": temperature,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		log.Printf("❌ Groq API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp.IsError() {
		msg := gjson.GetBytes(resp.Body(), "error.message").String()
		if msg == "" {
			msg = resp.String()
		}
		log.Printf("❌ Groq API returned %d: %s\n", resp.StatusCode(), msg)
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode(), msg)
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return content.String(), nil
}
