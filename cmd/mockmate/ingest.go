package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mockmate/interview-api/internal/config"
	"mockmate/interview-api/internal/services"
)

var ingestDocType string

var ingestCmd = &cobra.Command{
	Use:   "ingest [pdf...]",
	Short: "Load reference PDFs into the knowledge base",
	Long:  "Parse, chunk and embed reference PDFs (interview question banks or ATS rubrics) and store them in Qdrant.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDocType, "type", services.DocTypeQuestionBank,
		fmt.Sprintf("Document type: %s or %s", services.DocTypeQuestionBank, services.DocTypeATSRubric))
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestDocType != services.DocTypeQuestionBank && ingestDocType != services.DocTypeATSRubric {
		return fmt.Errorf("unknown document type %q", ingestDocType)
	}

	cfg := config.Load()
	if !cfg.KnowledgeBaseEnabled() {
		return fmt.Errorf("QDRANT_URL and GEMINI_API_KEY are required for ingestion")
	}

	kb, err := newKnowledgeBase(cfg, services.NewPDFParserService())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	successCount := 0
	failCount := 0
	for _, path := range args {
		log.Printf("📄 Processing: %s (%s)", path, ingestDocType)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("⚠️  File not found: %s", path)
			failCount++
			continue
		}

		stored, err := kb.IngestPDF(ctx, path, ingestDocType)
		if err != nil {
			log.Printf("❌ Failed to ingest %s: %v", path, err)
			failCount++
			continue
		}

		log.Printf("✅ Stored %d chunks from %s", stored, path)
		successCount++
	}

	log.Printf("📊 Ingestion finished: %d succeeded, %d failed", successCount, failCount)
	if successCount == 0 {
		return fmt.Errorf("no documents were ingested")
	}
	return nil
}

// newKnowledgeBase wires Gemini embeddings and Qdrant. It returns nil, nil
// when the knowledge base is not configured.
func newKnowledgeBase(cfg *config.Config, pdfParser services.PDFParserService) (*services.KnowledgeBase, error) {
	if !cfg.KnowledgeBaseEnabled() {
		return nil, nil
	}

	gemini, err := services.NewGeminiService(cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini embeddings: %w", err)
	}

	store, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant: %w", err)
	}

	if err := store.InitCollection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant collection: %w", err)
	}
	log.Println("✅ Knowledge base initialized")

	return services.NewKnowledgeBase(gemini, store, pdfParser, services.NewTextChunker()), nil
}
