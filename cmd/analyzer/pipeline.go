package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chensirou3/marketnewsanaylzer/internal/asset"
	"github.com/chensirou3/marketnewsanaylzer/internal/config"
	"github.com/chensirou3/marketnewsanaylzer/internal/fixtures"
	"github.com/chensirou3/marketnewsanaylzer/internal/ingest"
	"github.com/chensirou3/marketnewsanaylzer/internal/model"
	"github.com/chensirou3/marketnewsanaylzer/internal/report"
	"github.com/chensirou3/marketnewsanaylzer/internal/scoring"
	"github.com/chensirou3/marketnewsanaylzer/internal/storage"
	"github.com/chensirou3/marketnewsanaylzer/pkg/llm"
	"github.com/chensirou3/marketnewsanaylzer/pkg/news"
)

const fixtureCount = 3

func runAnalysis(cfg *config.Config, assetKey, date string, useFixtures bool) error {
	assetCfg, err := asset.Lookup(assetKey)
	if err != nil {
		return err
	}

	store := storage.New(cfg.DataDir, cfg.ReportsDir)

	fmt.Printf("Fetching %s news for %s...\n", assetCfg.DisplayName, date)

	var records []model.NewsRecord
	if useFixtures {
		fmt.Println("Using fixture data")
		records = fixtures.Generate(assetKey, fixtureCount)
	} else {
		engine := ingest.NewEngine(newProvider(cfg), store, cfg.ResultLimit)
		records, err = engine.FetchNews(context.Background(), assetKey, date)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("No %s news found for %s, falling back to fixture data\n", assetCfg.DisplayName, date)
			records = fixtures.Generate(assetKey, fixtureCount)
		}
	}

	fmt.Printf("\n%s news items (%d):\n", assetCfg.DisplayName, len(records))
	for i, r := range records {
		fmt.Printf("%d. %s (source: %s, sentiment: %.2f)\n", i+1, r.Title, r.Source, r.AlphaSentiment)
	}

	scorer := scoring.NewScorer(scoring.Config{
		SentimentWeight:        cfg.SentimentWeight,
		ImportanceWeight:       cfg.ImportanceWeight,
		MinImportanceThreshold: cfg.MinImportanceThreshold,
		TopNewsCount:           cfg.TopNewsCount,
	}, nil)

	top := scorer.SelectTopRelevant(scorer.Score(records))
	slog.Info("scoring complete", "asset", assetKey, "scored", len(records), "selected", len(top))

	narrative := buildNarrative(cfg, assetCfg.DisplayName, date, top)

	rep, err := report.Assemble(assetCfg.DisplayName, date, top,
		narrative.MarketOverview, narrative.MarketAnalysis, narrative.Conclusion)
	if err != nil {
		return fmt.Errorf("assemble report: %w", err)
	}

	if mdPath, err := store.SaveReport(assetCfg.ReportPrefix, date, rep); err != nil {
		slog.Warn("failed to save report", "asset", assetKey, "date", date, "error", err)
	} else {
		fmt.Printf("\nReport saved to %s\n", mdPath)
	}

	fmt.Println()
	fmt.Println(rep.ToMarkdown())
	return nil
}

func newProvider(cfg *config.Config) news.Client {
	opts := news.RetryOptions{
		Count:   cfg.RetryCount,
		Delay:   cfg.RetryDelay,
		Timeout: cfg.NewsTimeout,
	}
	if cfg.AlphaVantageAPIKey != "" {
		return news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey, opts)
	}
	if cfg.FinnhubAPIKey != "" {
		slog.Info("no Alpha Vantage key configured, using Finnhub")
		return news.NewFinnhubClient(cfg.FinnhubAPIKey)
	}
	// An unauthenticated call comes back without a feed container, which
	// degrades cleanly into the fixture fallback.
	slog.Warn("no news provider API key configured")
	return news.NewAlphaVantageClient("", opts)
}

func buildNarrative(cfg *config.Config, assetName, date string, top []model.ScoredRecord) *llm.NarrativeResult {
	var narrator llm.NarrativeClient
	switch {
	case cfg.OpenAIAPIKey != "":
		narrator = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	case cfg.AnthropicAPIKey != "":
		narrator = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		return localNarrative(assetName, top)
	}

	inputs := make([]llm.NarrativeInput, len(top))
	for i, r := range top {
		inputs[i] = llm.NarrativeInput{
			Title:     r.Title,
			Summary:   r.Summary,
			Source:    r.Record.Source,
			Sentiment: r.SentimentScore,
		}
	}

	result, err := narrator.Narrate(context.Background(), assetName, date, inputs)
	if err != nil {
		slog.Warn("narrative generation failed, using local fallback", "error", err)
		return localNarrative(assetName, top)
	}
	return result
}

// localNarrative produces deterministic report fragments when no language
// model backend is configured or reachable.
func localNarrative(assetName string, top []model.ScoredRecord) *llm.NarrativeResult {
	if len(top) == 0 {
		return &llm.NarrativeResult{
			MarketOverview: fmt.Sprintf("No material %s news cleared the importance threshold on this date.", assetName),
			MarketAnalysis: "With no material news flow, price action was likely driven by positioning and broader market factors rather than headlines.",
			Conclusion:     "A quiet news day; no headline-driven view to take.",
			ModelUsed:      "local",
		}
	}

	var positive, negative int
	var sum float64
	for _, r := range top {
		sum += r.SentimentScore
		switch {
		case r.SentimentScore > 0:
			positive++
		case r.SentimentScore < 0:
			negative++
		}
	}
	avg := sum / float64(len(top))

	tone := "mixed"
	if avg > 0.15 {
		tone = "positive"
	} else if avg < -0.15 {
		tone = "negative"
	}

	return &llm.NarrativeResult{
		MarketOverview: fmt.Sprintf(
			"%d material %s news items were selected for this date. Overall news sentiment was %s (average score %+.2f).",
			len(top), assetName, tone, avg),
		MarketAnalysis: fmt.Sprintf(
			"Of the selected items, %d carried positive sentiment and %d negative. The most important story was %q (%s).",
			positive, negative, top[0].Title, top[0].Record.Source),
		Conclusion: fmt.Sprintf("News flow for %s skewed %s on this date.", assetName, tone),
		ModelUsed:  "local",
	}
}
