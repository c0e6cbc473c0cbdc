package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

const knowledgeTopK = 3

// KnowledgeBase holds reference material (question banks, ATS rubrics) that
// is retrieved into prompts. A nil *KnowledgeBase is valid and retrieves nothing.
type KnowledgeBase struct {
	embedder Embedder
	store    VectorStore
	parser   PDFParserService
	chunker  TextChunker
}

func NewKnowledgeBase(embedder Embedder, store VectorStore, parser PDFParserService, chunker TextChunker) *KnowledgeBase {
	return &KnowledgeBase{
		embedder: embedder,
		store:    store,
		parser:   parser,
		chunker:  chunker,
	}
}

// ResumeContext holds the reference chunks retrieved for one resume.
type ResumeContext struct {
	ATSRubric    string
	QuestionBank string
}

// RetrieveForResume embeds query once and looks up both document types.
func (kb *KnowledgeBase) RetrieveForResume(ctx context.Context, query string) (ResumeContext, error) {
	if kb == nil {
		return ResumeContext{}, nil
	}

	embedding, err := kb.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return ResumeContext{}, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	var out ResumeContext
	if results, err := kb.store.SearchSimilar(ctx, embedding, DocTypeATSRubric, knowledgeTopK); err != nil {
		log.Printf("⚠️  Failed to search for %s: %v\n", DocTypeATSRubric, err)
	} else {
		out.ATSRubric = FormatKnowledgeContext(results)
	}

	if results, err := kb.store.SearchSimilar(ctx, embedding, DocTypeQuestionBank, knowledgeTopK); err != nil {
		log.Printf("⚠️  Failed to search for %s: %v\n", DocTypeQuestionBank, err)
	} else {
		out.QuestionBank = FormatKnowledgeContext(results)
	}

	return out, nil
}

// IngestPDF parses, chunks, embeds and stores one reference document and
// returns how many chunks were stored.
func (kb *KnowledgeBase) IngestPDF(ctx context.Context, path, docType string) (int, error) {
	pages, err := kb.parser.ExtractPages(path, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	chunks := kb.chunker.ChunkText(strings.Join(pages, "\n\n"), 1000, 200)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("no text content found in %s", path)
	}

	source := filepath.Base(path)
	stored := 0
	for i, chunk := range chunks {
		embedding, err := kb.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			log.Printf("⚠️  Chunk %d of %s: failed to embed: %v\n", i+1, source, err)
			continue
		}

		if err := kb.store.UpsertChunk(ctx, source, docType, chunk, embedding); err != nil {
			log.Printf("⚠️  Chunk %d of %s: failed to store: %v\n", i+1, source, err)
			continue
		}
		stored++
	}

	if stored == 0 {
		return 0, fmt.Errorf("no chunks of %s were stored", source)
	}

	return stored, nil
}
