package model

import (
	"encoding/json"
	"time"
)

// PublishTimeLayout is the wire format for publish timestamps (UTC-naive).
const PublishTimeLayout = "20060102T150405"

const summaryMaxRunes = 200

type NewsRecord struct {
	Title          string  `json:"title"`
	OriginalTitle  string  `json:"original_title"`
	Content        string  `json:"content"`
	Summary        string  `json:"summary"`
	PublishTime    string  `json:"publish_time"`
	Source         string  `json:"source"`
	URL            string  `json:"url"`
	AlphaSentiment float64 `json:"alpha_sentiment"`
}

// RecordKey identifies a news item for deduplication.
type RecordKey struct {
	Title       string
	Source      string
	PublishTime string
}

func (r NewsRecord) Key() RecordKey {
	return RecordKey{Title: r.Title, Source: r.Source, PublishTime: r.PublishTime}
}

func (r NewsRecord) PublishedAt() (time.Time, error) {
	return time.Parse(PublishTimeLayout, r.PublishTime)
}

// DerivedSummary returns the explicit summary when present, otherwise the
// first 200 characters of the content with an ellipsis when truncated.
// The derivation is idempotent: re-deriving from an already derived summary
// yields the same text.
func (r NewsRecord) DerivedSummary() string {
	if r.Summary != "" {
		return r.Summary
	}
	runes := []rune(r.Content)
	if len(runes) > summaryMaxRunes {
		return string(runes[:summaryMaxRunes]) + "..."
	}
	return r.Content
}

func (r NewsRecord) MarshalJSON() ([]byte, error) {
	type alias NewsRecord
	a := alias(r)
	a.Summary = r.DerivedSummary()
	return json.Marshal(a)
}

func (r *NewsRecord) UnmarshalJSON(data []byte) error {
	type alias NewsRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.OriginalTitle == "" {
		a.OriginalTitle = a.Title
	}
	*r = NewsRecord(a)
	return nil
}
