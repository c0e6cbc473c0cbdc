package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Score modes for the ATS report.
const (
	ScoreModeLLM       = "llm"
	ScoreModeHeuristic = "heuristic"
)

// Report modes for /generate_report.
const (
	ReportModeMerge = "merge"
	ReportModePlain = "plain"
)

// LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Qdrant    QdrantConfig
	LLM       LLMConfig
	Storage   StorageConfig
	Interview InterviewConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type LLMConfig struct {
	Provider     string
	GroqAPIKey   string
	GroqBaseURL  string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type InterviewConfig struct {
	ScoreMode         string
	ReportMode        string
	HistoryWindow     int
	ResumePageLimit   int
	PromptResumeChars int
	DashboardLimit    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "mockmate"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "mockmate_knowledge"),
		},
		LLM: LLMConfig{
			Provider:     getEnum("LLM_PROVIDER", ProviderGroq, ProviderGroq, ProviderGemini),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:  getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			GroqModel:    getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Interview: InterviewConfig{
			ScoreMode:         getEnum("ATS_SCORE_MODE", ScoreModeHeuristic, ScoreModeHeuristic, ScoreModeLLM),
			ReportMode:        getEnum("REPORT_MODE", ReportModeMerge, ReportModeMerge, ReportModePlain),
			HistoryWindow:     getEnvAsInt("CHAT_HISTORY_WINDOW", 3),
			ResumePageLimit:   getEnvAsInt("RESUME_PAGE_LIMIT", 3),
			PromptResumeChars: getEnvAsInt("PROMPT_RESUME_CHARS", 3000),
			DashboardLimit:    getEnvAsInt("DASHBOARD_LIMIT", 10),
		},
	}
}

// DatabaseEnabled reports whether a store was configured. Without one the
// service keeps working and the dashboard stays empty.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// KnowledgeBaseEnabled reports whether Qdrant retrieval can run. Embeddings
// always come from Gemini, whatever the chat provider is.
func (c *Config) KnowledgeBaseEnabled() bool {
	return c.Qdrant.URL != "" && c.LLM.GeminiAPIKey != ""
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnum(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, defaultValue)))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	log.Printf("⚠️  Unknown %s=%q, using %q\n", key, value, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
