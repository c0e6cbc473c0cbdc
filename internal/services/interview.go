package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"mockmate/interview-api/internal/config"
	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/repositories"
)

const (
	ResumeNotLoadedMessage = "Please upload a resume first!"
	ChatFallbackMessage    = "Sorry, could you repeat that?"
)

const (
	atsTemperature    float32 = 0.2
	chatTemperature   float32 = 0.7
	reportTemperature float32 = 0.6
)

var (
	ErrResumeNotLoaded = errors.New("no resume uploaded")
	ErrNoHistory       = errors.New("no interview history")
	ErrFileTooLarge    = errors.New("uploaded file is too large")
)

type InterviewService interface {
	// ProcessResume resets the session, extracts and scores the resume.
	// The returned report is always usable; err explains a degraded one.
	ProcessResume(ctx context.Context, src io.Reader) (models.ATSReport, error)
	// DiscardUpload handles an upload rejected before it could be read. The
	// session is reset all the same and the default report is returned.
	DiscardUpload(reason error) models.ATSReport
	// Chat returns the interviewer's reply. The reply is always usable.
	Chat(ctx context.Context, question string) (string, error)
	// Dashboard returns the most recent persisted turns, newest first.
	Dashboard(ctx context.Context) []models.Interview
	// GenerateReport merges a fresh performance judgement with the ATS scan.
	GenerateReport(ctx context.Context) (models.FinalReport, error)
	// GeneratePerformanceReport returns only the model's fields, or ErrNoHistory.
	GeneratePerformanceReport(ctx context.Context) (models.PerformanceReport, error)
	ReportMode() string
}

type InterviewOptions struct {
	ScoreMode       string
	ReportMode      string
	HistoryWindow   int
	ResumePageLimit int
	DashboardLimit  int
}

// OptionsFromConfig maps the interview section of the configuration.
func OptionsFromConfig(cfg config.InterviewConfig) InterviewOptions {
	return InterviewOptions{
		ScoreMode:       cfg.ScoreMode,
		ReportMode:      cfg.ReportMode,
		HistoryWindow:   cfg.HistoryWindow,
		ResumePageLimit: cfg.ResumePageLimit,
		DashboardLimit:  cfg.DashboardLimit,
	}
}

type interviewService struct {
	session       *Session
	llm           LLMService
	repo          repositories.InterviewRepository
	storage       StorageService
	pdfParser     PDFParserService
	knowledge     *KnowledgeBase
	heuristic     *ScoreHeuristic
	promptBuilder *PromptBuilder
	opts          InterviewOptions
}

func NewInterviewService(
	session *Session,
	llm LLMService,
	repo repositories.InterviewRepository,
	storage StorageService,
	pdfParser PDFParserService,
	knowledge *KnowledgeBase,
	heuristic *ScoreHeuristic,
	promptBuilder *PromptBuilder,
	opts InterviewOptions,
) InterviewService {
	if heuristic == nil {
		heuristic = NewScoreHeuristic(nil)
	}
	if promptBuilder == nil {
		promptBuilder = NewPromptBuilder(0)
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 3
	}
	if opts.ResumePageLimit <= 0 {
		opts.ResumePageLimit = 3
	}
	if opts.DashboardLimit <= 0 {
		opts.DashboardLimit = 10
	}

	return &interviewService{
		session:       session,
		llm:           llm,
		repo:          repo,
		storage:       storage,
		pdfParser:     pdfParser,
		knowledge:     knowledge,
		heuristic:     heuristic,
		promptBuilder: promptBuilder,
		opts:          opts,
	}
}

// ProcessResume implements InterviewService.
func (s *interviewService) ProcessResume(ctx context.Context, src io.Reader) (models.ATSReport, error) {
	// Cleared before any I/O, so a failed upload still leaves an empty session.
	s.session.Reset()
	report := models.DefaultATSReport()

	path, cleanup, err := s.storage.SaveTemp(src)
	defer cleanup()
	if err != nil {
		log.Printf("❌ Upload failed: %v\n", err)
		return report, fmt.Errorf("failed to store upload: %w", err)
	}

	log.Println("📄 Parsing resume...")
	resumeText, err := s.pdfParser.ExtractResumeText(path, s.opts.ResumePageLimit)
	if err != nil {
		log.Printf("❌ Failed to parse resume: %v\n", err)
		return report, fmt.Errorf("failed to parse resume: %w", err)
	}

	refs, err := s.knowledge.RetrieveForResume(ctx, s.promptBuilder.BuildRetrievalQuery(resumeText))
	if err != nil {
		log.Printf("⚠️  Warning: Failed to retrieve reference context: %v\n", err)
	}

	log.Println("🤖 Scanning resume with LLM...")
	var stored *models.ATSReport
	scanned, scanErr := s.scanResume(ctx, resumeText, refs.ATSRubric)
	if scanErr != nil {
		log.Printf("⚠️  ATS scan failed, using default report: %v\n", scanErr)
	} else {
		if s.opts.ScoreMode == config.ScoreModeHeuristic {
			scanned.Score = s.heuristic.Format(resumeText)
		}
		report = scanned
		stored = &scanned
	}

	s.session.SetResume(resumeText, stored)
	s.session.SetReferenceContext(refs.QuestionBank)

	log.Printf("✅ Resume processed: %d words, score %s\n", WordCount(resumeText), report.Score)
	return report, scanErr
}

// DiscardUpload implements InterviewService.
func (s *interviewService) DiscardUpload(reason error) models.ATSReport {
	s.session.Reset()
	log.Printf("❌ Upload rejected: %v\n", reason)
	return models.DefaultATSReport()
}

func (s *interviewService) scanResume(ctx context.Context, resumeText, rubric string) (models.ATSReport, error) {
	raw, err := s.llm.GenerateText(ctx, s.promptBuilder.BuildATSPrompt(resumeText, rubric), atsTemperature)
	if err != nil {
		return models.ATSReport{}, fmt.Errorf("failed to generate ATS scan: %w", err)
	}

	obj, err := ExtractJSON(raw)
	if err != nil {
		return models.ATSReport{}, fmt.Errorf("failed to parse ATS scan: %w", err)
	}

	return ATSReportFromObject(obj), nil
}

// Chat implements InterviewService.
func (s *interviewService) Chat(ctx context.Context, question string) (string, error) {
	if !s.session.IsResumeLoaded() {
		return ResumeNotLoadedMessage, ErrResumeNotLoaded
	}

	snap := s.session.Snapshot()
	prompt := s.promptBuilder.BuildInterviewPrompt(
		snap.ResumeText,
		snap.RecentTurns(s.opts.HistoryWindow),
		question,
		snap.ReferenceContext,
	)

	reply, err := s.llm.GenerateText(ctx, prompt, chatTemperature)
	if err != nil {
		log.Printf("❌ Chat generation failed: %v\n", err)
		return ChatFallbackMessage, fmt.Errorf("failed to generate reply: %w", err)
	}

	s.session.AppendTurn(question, reply)

	if !isStartCommand(question) {
		record := &models.Interview{
			UserQuestion: question,
			AIResponse:   reply,
			Score:        0,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			log.Printf("⚠️  Failed to persist interview turn: %v\n", err)
		}
	}

	return reply, nil
}

// Dashboard implements InterviewService.
func (s *interviewService) Dashboard(ctx context.Context) []models.Interview {
	rows, err := s.repo.FindRecent(ctx, s.opts.DashboardLimit)
	if err != nil {
		log.Printf("⚠️  Failed to load dashboard: %v\n", err)
		return []models.Interview{}
	}
	if rows == nil {
		return []models.Interview{}
	}
	return rows
}

// GenerateReport implements InterviewService.
func (s *interviewService) GenerateReport(ctx context.Context) (models.FinalReport, error) {
	snap := s.session.Snapshot()
	if len(snap.Transcript) == 0 {
		return DefaultFinalReport(snap.ATSResult), nil
	}

	performance, err := s.judgePerformance(ctx, snap.Transcript)
	if err != nil {
		log.Printf("❌ Report generation failed: %v\n", err)
		return MergeFinalReport(snap.ATSResult, nil), err
	}

	return MergeFinalReport(snap.ATSResult, performance), nil
}

// GeneratePerformanceReport implements InterviewService.
func (s *interviewService) GeneratePerformanceReport(ctx context.Context) (models.PerformanceReport, error) {
	snap := s.session.Snapshot()
	if len(snap.Transcript) == 0 {
		return models.PerformanceReport{}, ErrNoHistory
	}

	performance, err := s.judgePerformance(ctx, snap.Transcript)
	if err != nil {
		log.Printf("❌ Report generation failed: %v\n", err)
		return models.PerformanceReport{}, err
	}

	return PerformanceReportFromObject(performance), nil
}

func (s *interviewService) ReportMode() string {
	return s.opts.ReportMode
}

func (s *interviewService) judgePerformance(ctx context.Context, transcript []models.Turn) (map[string]any, error) {
	log.Printf("🤖 Generating report over %d turns...\n", len(transcript))
	raw, err := s.llm.GenerateText(ctx, s.promptBuilder.BuildReportPrompt(transcript), reportTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	obj, err := ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return obj, nil
}

func isStartCommand(question string) bool {
	return strings.ToLower(strings.TrimSpace(question)) == "start"
}
