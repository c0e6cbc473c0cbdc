package services

import (
	"context"
	"io"
	"strings"
	"sync"

	"mockmate/interview-api/internal/models"
)

// scriptedLLM answers by prompt kind and records every prompt it saw.
type scriptedLLM struct {
	mu      sync.Mutex
	ats     string
	chat    string
	report  string
	err     error
	prompts []string
}

func (l *scriptedLLM) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prompts = append(l.prompts, prompt)
	if l.err != nil {
		return "", l.err
	}

	switch {
	case strings.HasPrefix(prompt, "You are a strict ATS Scanner."):
		return l.ats, nil
	case strings.HasPrefix(prompt, "Analyze this Technical Interview History."):
		return l.report, nil
	default:
		return l.chat, nil
	}
}

func (l *scriptedLLM) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prompts)
}

func (l *scriptedLLM) lastPrompt() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.prompts) == 0 {
		return ""
	}
	return l.prompts[len(l.prompts)-1]
}

// fakeStorage hands out a fixed path and counts cleanups.
type fakeStorage struct {
	mu       sync.Mutex
	err      error
	cleanups int
}

func (s *fakeStorage) SaveTemp(src io.Reader) (string, func(), error) {
	content, _ := io.ReadAll(src)
	cleanup := func() {
		s.mu.Lock()
		s.cleanups++
		s.mu.Unlock()
	}
	if s.err != nil {
		return "", cleanup, s.err
	}
	// The "path" carries the upload content so fakeParser can return it.
	return string(content), cleanup, nil
}

func (s *fakeStorage) EnsureUploadDir() error { return nil }

func (s *fakeStorage) cleanupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleanups
}

// fakeParser treats the path as the document text.
type fakeParser struct {
	err error
}

func (p *fakeParser) ExtractPages(path string, _ int) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []string{path}, nil
}

func (p *fakeParser) ExtractResumeText(path string, maxPages int) (string, error) {
	pages, err := p.ExtractPages(path, maxPages)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, " "), nil
}

type fakeRepo struct {
	mu      sync.Mutex
	created []models.Interview
	err     error
}

func (r *fakeRepo) Create(_ context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *interview)
	return nil
}

func (r *fakeRepo) FindRecent(_ context.Context, limit int) ([]models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Interview, 0, limit)
	for i := len(r.created) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.created[i])
	}
	return out, nil
}

// fixedSource always returns the same offset into [0, n).
type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}
