package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

// Store persists pipeline artifacts as flat, indented JSON files under a data
// root (per-asset news) and a reports root.
type Store struct {
	dataRoot    string
	reportsRoot string
}

func New(dataRoot, reportsRoot string) *Store {
	return &Store{dataRoot: dataRoot, reportsRoot: reportsRoot}
}

// SaveRawResponse writes the exact provider payload, re-indented, tagged with
// the run date. Returns the file path.
func (s *Store) SaveRawResponse(assetDir, runDate string, payload []byte) (string, error) {
	dir := filepath.Join(s.dataRoot, assetDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	var buf bytes.Buffer
	out := payload
	if err := json.Indent(&buf, payload, "", "  "); err == nil {
		out = buf.Bytes()
	}

	path := filepath.Join(dir, fmt.Sprintf("alpha_vantage_response_%s.json", runDate))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("write raw response: %w", err)
	}
	return path, nil
}

// SaveRecords writes the normalized record list for one asset and date.
func (s *Store) SaveRecords(assetDir, assetKey, date string, records []model.NewsRecord) (string, error) {
	dir := filepath.Join(s.dataRoot, assetDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	if records == nil {
		records = []model.NewsRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_news_%s.json", assetKey, date))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write records: %w", err)
	}
	return path, nil
}

func (s *Store) LoadRecords(assetDir, assetKey, date string) ([]model.NewsRecord, error) {
	path := filepath.Join(s.dataRoot, assetDir, fmt.Sprintf("%s_news_%s.json", assetKey, date))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []model.NewsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// SaveReport writes both the markdown rendering and a JSON copy of the
// report. Returns the markdown path.
func (s *Store) SaveReport(prefix, date string, report *model.AnalysisReport) (string, error) {
	if err := os.MkdirAll(s.reportsRoot, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	mdPath := filepath.Join(s.reportsRoot, fmt.Sprintf("%s_%s.md", prefix, date))
	if err := os.WriteFile(mdPath, []byte(report.ToMarkdown()), 0o644); err != nil {
		return "", fmt.Errorf("write report markdown: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	jsonPath := filepath.Join(s.reportsRoot, fmt.Sprintf("%s_%s.json", prefix, date))
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write report json: %w", err)
	}

	return mdPath, nil
}

func (s *Store) LoadReport(prefix, date string) (*model.AnalysisReport, error) {
	path := filepath.Join(s.reportsRoot, fmt.Sprintf("%s_%s.json", prefix, date))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report model.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}
