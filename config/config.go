package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default summarizer settings
const (
	DefaultMaxSummaryLength = 150
	DefaultMinSummaryLength = 50
	DefaultLanguage         = "en"
)

// Audio artifact retention
const (
	// AudioKeepLatest caps the number of generated mp3 files kept on disk
	AudioKeepLatest = 30

	// AudioMaxAge drops generated files older than this regardless of count
	AudioMaxAge = 30 * time.Minute
)

// Upstream retry settings
const (
	MaxAPIRetries = 3
	APIRetryDelay = 2 * time.Second
)

// App holds runtime configuration resolved from the environment.
// Optional collaborators (Redis, Kafka, S3, model keys) are empty strings
// when unconfigured; consumers must degrade gracefully.
type App struct {
	Port     string
	AudioDir string

	CohereAPIKey string
	OpenAIAPIKey string

	NewsAPIKey  string
	RapidAPIKey string
	// NewsRSSFeed is an optional RSS preset name or URL used as a tertiary
	// headline source when both news APIs are exhausted.
	NewsRSSFeed string

	RedisAddr string
	RedisPass string

	KafkaBrokers []string
	KafkaTopic   string

	S3Bucket string
	S3Region string
	S3Prefix string
}

// Load resolves configuration from environment variables with defaults.
func Load() App {
	cfg := App{
		Port:         GetEnvOrDefault("PORT", "8080"),
		AudioDir:     GetEnvOrDefault("AUDIO_DIR", filepath.Join("static", "audio")),
		CohereAPIKey: strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		NewsAPIKey:   strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
		RapidAPIKey:  strings.TrimSpace(os.Getenv("RAPIDAPI_KEY")),
		NewsRSSFeed:  strings.TrimSpace(os.Getenv("NEWS_RSS_FEED")),
		RedisAddr:    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:    os.Getenv("REDIS_PASS"),
		KafkaTopic:   GetEnvOrDefault("KAFKA_TOPIC", "summaries.completed"),
		S3Bucket:     strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:     strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Prefix:     strings.Trim(strings.TrimSpace(os.Getenv("S3_PREFIX")), "/"),
	}

	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

// GetEnvOrDefault returns the environment value for key, or def when unset.
func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
