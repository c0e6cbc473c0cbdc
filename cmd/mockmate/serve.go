package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"mockmate/interview-api/internal/config"
	"mockmate/interview-api/internal/handlers"
	"mockmate/interview-api/internal/repositories"
	"mockmate/interview-api/internal/services"
)

// multipartSlack keeps Fiber's body limit above MAX_FILE_SIZE so the upload
// handler's own size check is the one that fires.
const multipartSlack = 1 << 20

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	log.Println("✅ Config loaded successfully")

	// Store is optional: without it turns are not persisted and the dashboard is empty.
	interviewRepo := repositories.NewNoopInterviewRepository()
	db, err := config.InitDatabase(cfg)
	switch {
	case errors.Is(err, config.ErrDatabaseDisabled):
		log.Println("⚠️  DB_HOST not set, persistence disabled")
	case err != nil:
		log.Printf("⚠️  Database unavailable, persistence disabled: %v\n", err)
	default:
		interviewRepo = repositories.NewInterviewRepository(db)
	}

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	pdfParser := services.NewPDFParserService()

	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	log.Printf("✅ LLM provider: %s\n", cfg.LLM.Provider)

	knowledgeBase, err := newKnowledgeBase(cfg, pdfParser)
	if err != nil {
		log.Printf("⚠️  Knowledge base disabled: %v\n", err)
		knowledgeBase = nil
	}

	interviewService := services.NewInterviewService(
		services.NewSession(),
		llmService,
		interviewRepo,
		storageService,
		pdfParser,
		knowledgeBase,
		services.NewScoreHeuristic(nil),
		services.NewPromptBuilder(cfg.Interview.PromptResumeChars),
		services.OptionsFromConfig(cfg.Interview),
	)
	log.Printf("✅ Interview service initialized (score mode: %s, report mode: %s)\n",
		cfg.Interview.ScoreMode, cfg.Interview.ReportMode)

	app := fiber.New(fiber.Config{
		AppName:      "MockMate AI",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + multipartSlack,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	handlers.SetupRoutes(app, interviewService, cfg.Storage.MaxFileSize)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	return app.Listen(addr)
}
