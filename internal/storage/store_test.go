package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	return New(filepath.Join(root, "data"), filepath.Join(root, "reports"))
}

func TestSaveRawResponse(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveRawResponse("oil_data", "20250307", []byte(`{"feed":[]}`))

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.HasSuffix(path, filepath.Join("oil_data", "alpha_vantage_response_20250307.json")))

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	// Stored indented.
	assert.Equal(t, true, strings.Contains(string(data), "\"feed\""))
}

func TestSaveAndLoadRecords(t *testing.T) {
	s := newTestStore(t)

	records := []model.NewsRecord{
		{
			Title:          "Gold hits record",
			OriginalTitle:  "Gold hits record",
			Content:        "Gold futures rose 1.8% to a record high.",
			PublishTime:    "20250307T093000",
			Source:         "Reuters",
			URL:            "https://example.com/gold",
			AlphaSentiment: 0.65,
		},
	}

	path, err := s.SaveRecords("gold_data", "gold", "20250307", records)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.HasSuffix(path, filepath.Join("gold_data", "gold_news_20250307.json")))

	loaded, err := s.LoadRecords("gold_data", "gold", "20250307")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(loaded))
	assert.Equal(t, "Gold hits record", loaded[0].Title)
	assert.Equal(t, 0.65, loaded[0].AlphaSentiment)
}

func TestSaveRecordsEmpty(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveRecords("oil_data", "oil", "20250307", nil)
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	// An empty run stores an empty array, not null.
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestLoadRecordsMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadRecords("oil_data", "oil", "19990101")
	assert.Equal(t, true, errors.Is(err, fs.ErrNotExist))
}

func TestSaveAndLoadReport(t *testing.T) {
	s := newTestStore(t)

	report := model.NewAnalysisReport(
		"Crude Oil Market News Analysis", "20250307", "Crude Oil",
		"Prices held firm.", "1. OPEC extends cuts.", "Supply remains tight.", "Constructive backdrop.",
	)

	mdPath, err := s.SaveReport("oil_analysis", "20250307", report)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.HasSuffix(mdPath, "oil_analysis_20250307.md"))

	md, err := os.ReadFile(mdPath)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(md), "Market Overview"))

	loaded, err := s.LoadReport("oil_analysis", "20250307")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Crude Oil", loaded.AssetName)
	assert.Equal(t, "Prices held firm.", loaded.MarketOverview)
}
