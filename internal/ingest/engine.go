package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chensirou3/marketnewsanaylzer/internal/asset"
	"github.com/chensirou3/marketnewsanaylzer/internal/model"
	"github.com/chensirou3/marketnewsanaylzer/pkg/news"
)

// ErrInvalidDate is returned for target dates not in YYYYMMDD form.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "20060102"

// ArtifactStore receives the best-effort side-effect writes of a run.
type ArtifactStore interface {
	SaveRawResponse(assetDir, runDate string, payload []byte) (string, error)
	SaveRecords(assetDir, assetKey, date string, records []model.NewsRecord) (string, error)
}

type Engine struct {
	provider news.Client
	store    ArtifactStore
	limit    int
	now      func() time.Time
}

func NewEngine(provider news.Client, store ArtifactStore, limit int) *Engine {
	return &Engine{
		provider: provider,
		store:    store,
		limit:    limit,
		now:      time.Now,
	}
}

// FetchNews issues exactly one provider request and returns the normalized
// records whose publish date equals targetDate, deduplicated first-seen-wins
// on (title, source, publish time). Transport failures and responses without
// a feed container degrade to an empty result with a logged warning so the
// caller can fall back to fixture data; only bad inputs produce an error.
func (e *Engine) FetchNews(ctx context.Context, assetKey, targetDate string) ([]model.NewsRecord, error) {
	if _, err := time.Parse(dateLayout, targetDate); err != nil || len(targetDate) != len(dateLayout) {
		return nil, fmt.Errorf("%w: %q (want YYYYMMDD)", ErrInvalidDate, targetDate)
	}

	cfg, err := asset.Lookup(assetKey)
	if err != nil {
		return nil, err
	}

	feed, err := e.provider.FetchFeed(ctx, cfg.Keywords, e.limit)
	if err != nil {
		slog.Warn("provider fetch failed after retries, no data for this run",
			"asset", assetKey, "provider", e.provider.Name(), "error", err)
		return nil, nil
	}

	if len(feed.Raw) > 0 {
		runDate := e.now().Format(dateLayout)
		if _, err := e.store.SaveRawResponse(cfg.DataDir, runDate, feed.Raw); err != nil {
			slog.Warn("failed to persist raw provider response", "asset", assetKey, "error", err)
		}
	}

	if !feed.HasFeed {
		slog.Warn("provider response has no feed, possibly rate limited or no results",
			"asset", assetKey, "provider", e.provider.Name())
		return nil, nil
	}

	seen := make(map[model.RecordKey]struct{})
	records := make([]model.NewsRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		day, err := publishDay(item.TimePublished)
		if err != nil {
			slog.Warn("skipping item with unparsable publish time",
				"asset", assetKey, "time_published", item.TimePublished, "error", err)
			continue
		}
		if day != targetDate {
			continue
		}

		rec := model.NewsRecord{
			Title:          item.Title,
			OriginalTitle:  item.Title,
			Content:        item.Summary,
			PublishTime:    item.TimePublished,
			Source:         item.Source,
			URL:            item.URL,
			AlphaSentiment: item.OverallSentimentScore,
		}

		key := rec.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, rec)
	}

	if _, err := e.store.SaveRecords(cfg.DataDir, assetKey, targetDate, records); err != nil {
		slog.Warn("failed to persist news records", "asset", assetKey, "date", targetDate, "error", err)
	}

	slog.Info("news ingested", "asset", assetKey, "date", targetDate,
		"raw_items", len(feed.Items), "kept", len(records))
	return records, nil
}

func publishDay(timePublished string) (string, error) {
	if len(timePublished) < len(dateLayout) {
		return "", fmt.Errorf("publish time too short: %q", timePublished)
	}
	day := timePublished[:len(dateLayout)]
	if _, err := time.Parse(dateLayout, day); err != nil {
		return "", fmt.Errorf("parse publish time %q: %w", timePublished, err)
	}
	return day, nil
}
