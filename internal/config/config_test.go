package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, 0.6, cfg.SentimentWeight)
	assert.Equal(t, 0.4, cfg.ImportanceWeight)
	assert.Equal(t, 20.0, cfg.MinImportanceThreshold)
	assert.Equal(t, 10, cfg.TopNewsCount)
	assert.Equal(t, 50, cfg.ResultLimit)
	assert.Equal(t, 3, cfg.RetryCount)
	assert.Equal(t, 15*time.Second, cfg.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.NewsTimeout)
	assert.Equal(t, 8, cfg.BatchSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "test-key")
	t.Setenv("DATA_DIR", "/tmp/newsdata")
	t.Setenv("SENTIMENT_WEIGHT", "0.7")
	t.Setenv("IMPORTANCE_WEIGHT", "0.3")
	t.Setenv("TOP_NEWS_COUNT", "5")
	t.Setenv("RETRY_DELAY_SECONDS", "2")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.AlphaVantageAPIKey)
	assert.Equal(t, "/tmp/newsdata", cfg.DataDir)
	assert.Equal(t, 0.7, cfg.SentimentWeight)
	assert.Equal(t, 0.3, cfg.ImportanceWeight)
	assert.Equal(t, 5, cfg.TopNewsCount)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
}

func TestLoadIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("TOP_NEWS_COUNT", "not-a-number")
	t.Setenv("SENTIMENT_WEIGHT", "lots")

	cfg := Load()

	assert.Equal(t, 10, cfg.TopNewsCount)
	assert.Equal(t, 0.6, cfg.SentimentWeight)
}
