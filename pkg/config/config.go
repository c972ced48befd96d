package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	FAQ       FAQConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig configures the optional Postgres connection used for
// chatbot settings and FAQ upload records. An empty Host disables the
// database; the service then runs with in-memory defaults.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type FAQConfig struct {
	// StorageDir holds processed FAQ documents, one file per language
	// named faq_<lang>.json.
	StorageDir string
	// Languages lists the language codes the chatbot serves.
	Languages []string
	// MatchThreshold is the minimum composite score for a question to be
	// answered rather than suggested.
	MatchThreshold float64
	// SuggestionLimit caps suggested questions returned on a failed match.
	SuggestionLimit int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, plain environment variables still apply (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	matchThreshold, _ := strconv.ParseFloat(getEnv("FAQ_MATCH_THRESHOLD", "50"), 64)
	suggestionLimit, _ := strconv.Atoi(getEnv("FAQ_SUGGESTION_LIMIT", "3"))
	requestsPerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "30"))
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "5"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "chatbot_file"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		FAQ: FAQConfig{
			StorageDir:      getEnv("FAQ_STORAGE_DIR", "faq_files"),
			Languages:       splitList(getEnv("FAQ_LANGUAGES", "fr,en")),
			MatchThreshold:  matchThreshold,
			SuggestionLimit: suggestionLimit,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: requestsPerMinute,
			Burst:             burst,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Enabled reports whether a database connection is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
