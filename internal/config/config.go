package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Backend strategy: gemini | geminisdk | relay | chatflow
	BackendStrategy string
	BackendRetries  int

	// Gemini (direct and SDK variants)
	GeminiAPIKey string
	GeminiURLs   []string
	GeminiModel  string

	// Relay
	RelayURL   string
	RelayToken string

	// Chatflow
	ChatflowURL string

	// Emotion analysis endpoint
	EmotionAPIURL string

	// Turn pipeline
	Cooldown      time.Duration
	TemplateDelay time.Duration

	// Redis (turn event fan-out)
	RedisURL string

	// Optional transcript archive
	DatabaseURL string
	JWTSecret   string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		BackendStrategy: getEnvOrDefault("BACKEND_STRATEGY", "gemini"),
		BackendRetries:  getEnvAsIntOrDefault("BACKEND_RETRIES", 1),
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiURLs:      splitList(getEnvOrDefault("GEMINI_API_URLS", "")),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		RelayURL:        getEnvOrDefault("RELAY_URL", ""),
		RelayToken:      getEnvOrDefault("RELAY_TOKEN", ""),
		ChatflowURL:     getEnvOrDefault("CHATFLOW_URL", ""),
		EmotionAPIURL:   mustGetEnv("EMOTION_API_URL"),
		Cooldown:        time.Duration(getEnvAsIntOrDefault("COOLDOWN_MS", 3000)) * time.Millisecond,
		TemplateDelay:   time.Duration(getEnvAsIntOrDefault("TEMPLATE_DELAY_MS", 1000)) * time.Millisecond,
		RedisURL:        mustGetEnv("REDIS_URL"),
		DatabaseURL:     getEnvOrDefault("DATABASE_URL", ""),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.DatabaseURL != "" && cfg.JWTSecret == "" {
		panic("JWT_SECRET is required when DATABASE_URL is set")
	}

	return cfg
}

// ArchiveEnabled reports whether settled turns are persisted.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
