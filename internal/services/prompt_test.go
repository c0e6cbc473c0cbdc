package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mockmate/interview-api/internal/models"
)

func TestPromptBuilder_ATSPromptTruncatesResume(t *testing.T) {
	pb := NewPromptBuilder(10)
	prompt := pb.BuildATSPrompt("0123456789ABCDEF", "")

	assert.True(t, strings.HasPrefix(prompt, "You are a strict ATS Scanner."))
	assert.Contains(t, prompt, "RESUME TEXT: 0123456789\n")
	assert.NotContains(t, prompt, "ABCDEF")
	assert.NotContains(t, prompt, "SCORING REFERENCE")
	assert.Contains(t, prompt, `"missing_keywords"`)
}

func TestPromptBuilder_InterviewPrompt(t *testing.T) {
	pb := NewPromptBuilder(0)
	history := []models.Turn{{Question: "start", Reply: "What is a slice?"}}
	prompt := pb.BuildInterviewPrompt("Go developer", history, "A view over an array", "")

	assert.True(t, strings.HasPrefix(prompt, "You are a technical interviewer."))
	assert.Contains(t, prompt, `HISTORY: ["User: start | AI: What is a slice?"]`)
	assert.Contains(t, prompt, "USER: A view over an array")
	assert.Contains(t, prompt, `If user says "start"`)
	assert.NotContains(t, prompt, "REFERENCE QUESTIONS")
}

func TestPromptBuilder_InterviewPromptEmptyHistory(t *testing.T) {
	prompt := NewPromptBuilder(0).BuildInterviewPrompt("resume", nil, "start", "")
	assert.Contains(t, prompt, "HISTORY: []")
}

func TestPromptBuilder_ReportPromptUsesWholeTranscript(t *testing.T) {
	var transcript []models.Turn
	for _, q := range []string{"one", "two", "three", "four", "five"} {
		transcript = append(transcript, models.Turn{Question: q, Reply: "ok"})
	}
	prompt := NewPromptBuilder(0).BuildReportPrompt(transcript)

	assert.True(t, strings.HasPrefix(prompt, "Analyze this Technical Interview History."))
	assert.Contains(t, prompt, "User: one | AI: ok\nUser: two | AI: ok")
	assert.Contains(t, prompt, "User: five | AI: ok")
	assert.Contains(t, prompt, `"improvements"`)
}

func TestFormatKnowledgeContext(t *testing.T) {
	assert.Empty(t, FormatKnowledgeContext(nil))

	out := FormatKnowledgeContext([]SearchResult{
		{Text: "  first  ", Score: 0.91},
		{Text: "second", Score: 0.5},
	})
	assert.Equal(t, "--- Reference 1 (Score: 0.91) ---\nfirst\n\n--- Reference 2 (Score: 0.50) ---\nsecond", out)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "héllo", truncateRunes("héllo", 0))
}
