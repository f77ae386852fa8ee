package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAILegacyModel string
	AssistantModel    string
	PollInterval      time.Duration
	PollTimeout       time.Duration
	MaxUploadBytes    int64
}

// Load reads environment variables, optionally from a .env file if present.
// The OpenAI key may be absent at boot; calls made without it fail lazily.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAILegacyModel: getEnv("OPENAI_LEGACY_MODEL", "gpt-3.5-turbo-1106"),
		AssistantModel:    getEnv("OPENAI_ASSISTANT_MODEL", "gpt-4o"),
		PollInterval:      time.Duration(getEnvInt("OPENAI_POLL_INTERVAL_MS", 1000)) * time.Millisecond,
		PollTimeout:       time.Duration(getEnvInt("OPENAI_POLL_TIMEOUT_SECONDS", 120)) * time.Second,
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
