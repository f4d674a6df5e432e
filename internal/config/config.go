package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is resolved once at
// startup and passed down explicitly; no component reads the environment on
// its own.
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Redis configuration
	RedisURL    string `json:"redis_url"`
	RedisPrefix string `json:"redis_prefix"`

	// News pipeline
	NewsProvider    string        `json:"news_provider"`
	GNewsAPIKey     string        `json:"-"`
	NewsMaxArticles int           `json:"news_max_articles"`
	NewsCacheTTL    time.Duration `json:"news_cache_ttl"`
	UpstreamTimeout time.Duration `json:"upstream_timeout"`

	// Article extraction
	ExtractTimeout time.Duration `json:"extract_timeout"`

	// Video section
	YouTubeAPIKey string        `json:"-"`
	VideoCacheTTL time.Duration `json:"video_cache_ttl"`

	// AI proxy
	AIProvider string        `json:"ai_provider"`
	GroqAPIKey string        `json:"-"`
	OpenAIKey  string        `json:"-"`
	AITimeout  time.Duration `json:"ai_timeout"`

	// Logging
	LogLevel string `json:"log_level"`

	// Security
	AdminAPIKey string `json:"-"`
}

// Load loads configuration from environment variables.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnv("REDIS_PREFIX", "softnews:"),

		NewsProvider:    strings.ToLower(getEnv("NEWS_PROVIDER", "gnews")),
		GNewsAPIKey:     getEnv("GNEWS_API_KEY", ""),
		NewsMaxArticles: getEnvAsInt("NEWS_MAX_ARTICLES", 30),
		NewsCacheTTL:    getEnvAsDuration("NEWS_CACHE_TTL", 24*time.Hour),
		UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		ExtractTimeout: getEnvAsDuration("EXTRACT_TIMEOUT", 15*time.Second),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		VideoCacheTTL: getEnvAsDuration("VIDEO_CACHE_TTL", 6*time.Hour),

		AIProvider: strings.ToLower(getEnv("AI_PROVIDER", "groq")),
		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		OpenAIKey:  getEnv("OPENAI_API_KEY", ""),
		AITimeout:  getEnvAsDuration("AI_TIMEOUT", 60*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
