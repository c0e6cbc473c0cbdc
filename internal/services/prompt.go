package services

import (
	"fmt"
	"strings"

	"mockmate/interview-api/internal/models"
)

type PromptBuilder struct {
	resumeChars int
}

func NewPromptBuilder(resumeChars int) *PromptBuilder {
	if resumeChars <= 0 {
		resumeChars = 3000
	}
	return &PromptBuilder{resumeChars: resumeChars}
}

// BuildATSPrompt asks for a strict ATS scan of the resume.
func (pb *PromptBuilder) BuildATSPrompt(resumeText, rubric string) string {
	var sb strings.Builder
	sb.WriteString("You are a strict ATS Scanner.\n")
	sb.WriteString(fmt.Sprintf("RESUME TEXT: %s\n\n", truncateRunes(resumeText, pb.resumeChars)))

	if rubric != "" {
		sb.WriteString("SCORING REFERENCE:\n")
		sb.WriteString(rubric)
		sb.WriteString("\n\n")
	}

	sb.WriteString(`TASK:
1. Identify Job Role.
2. Calculate Score (0-100) based on keywords & structure.
3. List 3-5 CRITICAL missing technical skills.

OUTPUT JSON ONLY:
{
    "score": "XX/100",
    "missing_keywords": ["Skill1", "Skill2"],
    "formatting_issues": ["Issue1"],
    "summary": "1-line honest feedback"
}`)
	return sb.String()
}

// BuildInterviewPrompt asks for the next interviewer turn. history holds the
// last few turns only.
func (pb *PromptBuilder) BuildInterviewPrompt(resumeText string, history []models.Turn, question, questionBank string) string {
	var sb strings.Builder
	sb.WriteString("You are a technical interviewer.\n")
	sb.WriteString(fmt.Sprintf("RESUME: %s\n", truncateRunes(resumeText, pb.resumeChars)))
	sb.WriteString(fmt.Sprintf("HISTORY: %s\n", formatHistory(history)))
	sb.WriteString(fmt.Sprintf("USER: %s\n", question))

	if questionBank != "" {
		sb.WriteString("\nREFERENCE QUESTIONS:\n")
		sb.WriteString(questionBank)
		sb.WriteString("\n")
	}

	sb.WriteString(`
Instructions:
1. If user says "start", ask a technical question based on resume.
2. If answering, evaluate answer strictly.`)
	return sb.String()
}

// BuildReportPrompt asks for a performance report over the whole transcript.
func (pb *PromptBuilder) BuildReportPrompt(transcript []models.Turn) string {
	return fmt.Sprintf(`Analyze this Technical Interview History.
HISTORY:
%s

Generate a Performance Report (JSON ONLY):
{
    "communication": "Rating/5",
    "technical": "Rating/5",
    "confidence": "Rating/5",
    "feedback": "Summary of candidate's answers.",
    "improvements": ["Improvement 1", "Improvement 2"]
}`, FormatTranscript(transcript, "\n"))
}

// BuildRetrievalQuery creates the knowledge base query for a resume.
func (pb *PromptBuilder) BuildRetrievalQuery(resumeText string) string {
	return "Interview questions and evaluation criteria for: " + truncateRunes(resumeText, 1000)
}

// FormatKnowledgeContext joins retrieved chunks for a prompt.
func FormatKnowledgeContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Reference %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

func formatHistory(history []models.Turn) string {
	quoted := make([]string, 0, len(history))
	for _, t := range history {
		quoted = append(quoted, fmt.Sprintf("%q", FormatTurn(t)))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
