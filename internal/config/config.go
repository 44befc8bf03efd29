package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every effect-bearing tunable of the pipeline.
type Config struct {
	// API keys
	AlphaVantageAPIKey string
	FinnhubAPIKey      string
	OpenAIAPIKey       string
	AnthropicAPIKey    string

	// Storage
	DataDir    string
	ReportsDir string

	// Scoring
	SentimentWeight        float64
	ImportanceWeight       float64
	MinImportanceThreshold float64
	TopNewsCount           int

	// Network
	ResultLimit int
	RetryCount  int
	RetryDelay  time.Duration
	NewsTimeout time.Duration
	BatchSize   int
}

// Load returns the default configuration with .env and environment overrides
// applied.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:    "data",
		ReportsDir: "reports",

		SentimentWeight:        0.6,
		ImportanceWeight:       0.4,
		MinImportanceThreshold: 20.0,
		TopNewsCount:           10,

		ResultLimit: 50,
		RetryCount:  3,
		RetryDelay:  15 * time.Second,
		NewsTimeout: 30 * time.Second,
		BatchSize:   8,
	}

	cfg.loadFromEnv()
	return cfg
}

func (c *Config) loadFromEnv() {
	c.AlphaVantageAPIKey = os.Getenv("ALPHA_VANTAGE_API_KEY")
	c.FinnhubAPIKey = os.Getenv("FINNHUB_API_KEY")
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")

	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("REPORTS_DIR"); val != "" {
		c.ReportsDir = val
	}

	if val := os.Getenv("SENTIMENT_WEIGHT"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.SentimentWeight = f
		}
	}
	if val := os.Getenv("IMPORTANCE_WEIGHT"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.ImportanceWeight = f
		}
	}
	if val := os.Getenv("MIN_IMPORTANCE_THRESHOLD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.MinImportanceThreshold = f
		}
	}
	if val := os.Getenv("TOP_NEWS_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.TopNewsCount = n
		}
	}

	if val := os.Getenv("RESULT_LIMIT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.ResultLimit = n
		}
	}
	if val := os.Getenv("RETRY_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.RetryCount = n
		}
	}
	if val := os.Getenv("RETRY_DELAY_SECONDS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.RetryDelay = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("NEWS_TIMEOUT_SECONDS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.NewsTimeout = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("BATCH_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.BatchSize = n
		}
	}
}
