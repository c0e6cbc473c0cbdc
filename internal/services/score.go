package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	heuristicBase     = 40
	heuristicMaxBoost = 40
	heuristicJitter   = 5
	heuristicMin      = 30
	heuristicMax      = 95
)

// IntSource yields uniform ints in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// ScoreHeuristic derives an ATS score from resume length so that a model
// answering with the same number every time still yields a spread.
type ScoreHeuristic struct {
	src IntSource
}

func NewScoreHeuristic(src IntSource) *ScoreHeuristic {
	if src == nil {
		src = globalSource{}
	}
	return &ScoreHeuristic{src: src}
}

// Score returns clamp(40 + min(40, words/20) + U[-5,5], 30, 95).
func (h *ScoreHeuristic) Score(resumeText string) int {
	boost := WordCount(resumeText) / 20
	if boost > heuristicMaxBoost {
		boost = heuristicMaxBoost
	}

	jitter := h.src.IntN(2*heuristicJitter+1) - heuristicJitter
	score := heuristicBase + boost + jitter

	if score < heuristicMin {
		return heuristicMin
	}
	if score > heuristicMax {
		return heuristicMax
	}
	return score
}

// Format renders a score the way the ATS report carries it.
func (h *ScoreHeuristic) Format(resumeText string) string {
	return FormatScore(h.Score(resumeText))
}

func FormatScore(score int) string {
	return fmt.Sprintf("%d/100", score)
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
