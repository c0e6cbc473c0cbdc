package services

import (
	"fmt"
	"strings"
	"sync"

	"mockmate/interview-api/internal/models"
)

// Session is the single interview in progress: the uploaded resume, the chat
// transcript and the ATS scan. There is exactly one per process.
//
// Each method is atomic on its own. Upload calls Reset and SetResume as two
// separate steps around slow I/O, so a concurrent upload or chat can still
// observe the cleared state or overwrite another upload's result.
type Session struct {
	mu               sync.Mutex
	resumeText       string
	transcript       []models.Turn
	atsResult        *models.ATSReport
	referenceContext string
}

// SessionSnapshot is a copy of the session that is safe to read without locks.
type SessionSnapshot struct {
	ResumeText       string
	Transcript       []models.Turn
	ATSResult        *models.ATSReport
	ReferenceContext string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumeText = ""
	s.transcript = nil
	s.atsResult = nil
	s.referenceContext = ""
}

// SetResume stores the resume text and, when the scan succeeded, its report.
// A nil report leaves the session without an ATS result.
func (s *Session) SetResume(text string, report *models.ATSReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumeText = text
	if report != nil {
		r := cloneATSReport(*report)
		s.atsResult = &r
	}
}

func (s *Session) SetReferenceContext(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.referenceContext = text
}

func (s *Session) AppendTurn(question, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, models.Turn{Question: question, Reply: reply})
}

func (s *Session) IsResumeLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resumeText != ""
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		ResumeText:       s.resumeText,
		Transcript:       append([]models.Turn(nil), s.transcript...),
		ReferenceContext: s.referenceContext,
	}
	if s.atsResult != nil {
		r := cloneATSReport(*s.atsResult)
		snap.ATSResult = &r
	}
	return snap
}

// RecentTurns returns at most the last n turns in arrival order.
func (snap SessionSnapshot) RecentTurns(n int) []models.Turn {
	if n <= 0 {
		return nil
	}
	if len(snap.Transcript) <= n {
		return snap.Transcript
	}
	return snap.Transcript[len(snap.Transcript)-n:]
}

// FormatTurn renders a turn the way it is fed back into prompts.
func FormatTurn(t models.Turn) string {
	return fmt.Sprintf("User: %s | AI: %s", t.Question, t.Reply)
}

func FormatTranscript(turns []models.Turn, sep string) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, FormatTurn(t))
	}
	return strings.Join(lines, sep)
}

func cloneATSReport(r models.ATSReport) models.ATSReport {
	r.MissingKeywords = append([]string(nil), r.MissingKeywords...)
	r.FormattingIssues = append([]string(nil), r.FormattingIssues...)
	return r
}
