package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	OpenRouter OpenRouterConfig
	Catalog    CatalogConfig
	Redis      RedisConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	QuoteModel  string
	Referer     string
	Title       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

type CatalogConfig struct {
	CSVPath string
}

type RedisConfig struct {
	Addr       string
	SummaryTTL time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; environment variables may be set directly
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	llmTimeout, _ := strconv.Atoi(getEnv("OPENROUTER_TIMEOUT", "30"))
	maxTokens, _ := strconv.Atoi(getEnv("OPENROUTER_MAX_TOKENS", "1000"))
	temperature, _ := strconv.ParseFloat(getEnv("OPENROUTER_TEMPERATURE", "0.7"), 64)
	summaryTTL, _ := strconv.Atoi(getEnv("CACHE_SUMMARY_TTL_MINUTES", "15"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		OpenRouter: OpenRouterConfig{
			APIKey:      getEnv("OPENROUTER_API_KEY", ""),
			BaseURL:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:       getEnv("OPENROUTER_MODEL", "x-ai/grok-4-fast:free"),
			QuoteModel:  getEnv("OPENROUTER_QUOTE_MODEL", "anthropic/claude-3-5-sonnet"),
			Referer:     getEnv("OPENROUTER_REFERER", "https://hitechtesting.com"),
			Title:       getEnv("OPENROUTER_TITLE", "Hitech Testing USA"),
			Timeout:     time.Duration(llmTimeout) * time.Second,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		},
		Catalog: CatalogConfig{
			CSVPath: getEnv("CATALOG_CSV_PATH", "data/products.csv"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			SummaryTTL: time.Duration(summaryTTL) * time.Minute,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
