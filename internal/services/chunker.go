package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText packs paragraphs into chunks of at most maxChunkSize runes.
// Paragraphs longer than a chunk are packed sentence by sentence. Each new
// chunk starts with the last overlap runes of the previous one.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 || overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	var units []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) > maxChunkSize {
			units = append(units, splitIntoSentences(para)...)
			continue
		}
		units = append(units, para)
	}

	var chunks []string
	var current strings.Builder
	for _, unit := range units {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+utf8.RuneCountInString(unit)+1 > maxChunkSize {
			prev := current.String()
			chunks = append(chunks, prev)
			current.Reset()
			if tail := lastRunes(prev, overlap); tail != "" {
				current.WriteString(tail)
			}
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(unit)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func lastRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
