package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "QDRANT_URL", "GEMINI_API_KEY", "ATS_SCORE_MODE", "REPORT_MODE", "LLM_PROVIDER", "CHAT_HISTORY_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.GroqModel)
	assert.Equal(t, ScoreModeHeuristic, cfg.Interview.ScoreMode)
	assert.Equal(t, ReportModeMerge, cfg.Interview.ReportMode)
	assert.Equal(t, 3, cfg.Interview.HistoryWindow)
	assert.Equal(t, 3, cfg.Interview.ResumePageLimit)
	assert.Equal(t, 3000, cfg.Interview.PromptResumeChars)
	assert.Equal(t, 10, cfg.Interview.DashboardLimit)
	assert.False(t, cfg.DatabaseEnabled())
	assert.False(t, cfg.KnowledgeBaseEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ATS_SCORE_MODE", "LLM")
	t.Setenv("REPORT_MODE", "plain")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("CHAT_HISTORY_WINDOW", "2")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("QDRANT_URL", "http://qdrant:6333")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := Load()

	assert.Equal(t, ScoreModeLLM, cfg.Interview.ScoreMode)
	assert.Equal(t, ReportModePlain, cfg.Interview.ReportMode)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 2, cfg.Interview.HistoryWindow)
	assert.True(t, cfg.DatabaseEnabled())
	assert.True(t, cfg.KnowledgeBaseEnabled())
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
}

func TestLoad_UnknownEnumFallsBack(t *testing.T) {
	t.Setenv("ATS_SCORE_MODE", "dice")
	t.Setenv("REPORT_MODE", "deep")

	cfg := Load()

	assert.Equal(t, ScoreModeHeuristic, cfg.Interview.ScoreMode)
	assert.Equal(t, ReportModeMerge, cfg.Interview.ReportMode)
}

func TestGetEnvAsInt_InvalidUsesDefault(t *testing.T) {
	t.Setenv("DASHBOARD_LIMIT", "ten")
	assert.Equal(t, 10, getEnvAsInt("DASHBOARD_LIMIT", 10))
}

func TestInitDatabase_DisabledWithoutHost(t *testing.T) {
	t.Setenv("DB_HOST", "")

	db, err := InitDatabase(Load())
	require.ErrorIs(t, err, ErrDatabaseDisabled)
	assert.Nil(t, db)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("development"))
	assert.Equal(t, logger.Silent, gormLogLevel("production"))
	assert.Equal(t, logger.Silent, gormLogLevel(""))
}
