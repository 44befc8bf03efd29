package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestDerivedSummaryShortContent(t *testing.T) {
	r := NewsRecord{Content: "Oil prices rose on OPEC supply cuts."}
	assert.Equal(t, "Oil prices rose on OPEC supply cuts.", r.DerivedSummary())
}

func TestDerivedSummaryLongContent(t *testing.T) {
	r := NewsRecord{Content: strings.Repeat("a", 250)}

	got := r.DerivedSummary()
	assert.Equal(t, 203, len(got))
	assert.Equal(t, true, strings.HasSuffix(got, "..."))
}

func TestDerivedSummaryExplicitWins(t *testing.T) {
	r := NewsRecord{Content: strings.Repeat("a", 250), Summary: "explicit"}
	assert.Equal(t, "explicit", r.DerivedSummary())
}

func TestUnmarshalDefaults(t *testing.T) {
	payload := `{"title":"Gold rallies","content":"Gold gained 2%.","publish_time":"20250307T093000","source":"Reuters","url":"https://example.com/gold"}`

	var r NewsRecord
	err := json.Unmarshal([]byte(payload), &r)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Gold rallies", r.OriginalTitle)
	assert.Equal(t, 0.0, r.AlphaSentiment)
}

func TestRoundTrip(t *testing.T) {
	r := NewsRecord{
		Title:          "Crude climbs",
		OriginalTitle:  "Crude climbs",
		Content:        strings.Repeat("x", 300),
		PublishTime:    "20250307T120000",
		Source:         "Bloomberg",
		URL:            "https://example.com/crude",
		AlphaSentiment: 0.42,
	}

	data, err := json.Marshal(r)
	assert.Equal(t, nil, err)

	var back NewsRecord
	err = json.Unmarshal(data, &back)
	assert.Equal(t, nil, err)

	assert.Equal(t, r.Title, back.Title)
	assert.Equal(t, r.PublishTime, back.PublishTime)
	assert.Equal(t, r.AlphaSentiment, back.AlphaSentiment)
	// The derived summary survives the round trip unchanged.
	assert.Equal(t, r.DerivedSummary(), back.Summary)
	assert.Equal(t, back.DerivedSummary(), back.Summary)
}

func TestRecordKey(t *testing.T) {
	a := NewsRecord{Title: "t", Source: "s", PublishTime: "20250307T120000", URL: "https://a"}
	b := NewsRecord{Title: "t", Source: "s", PublishTime: "20250307T120000", URL: "https://b"}

	assert.Equal(t, a.Key(), b.Key())

	c := NewsRecord{Title: "t", Source: "other", PublishTime: "20250307T120000"}
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestPublishedAt(t *testing.T) {
	r := NewsRecord{PublishTime: "20250307T153045"}

	got, err := r.PublishedAt()
	assert.Equal(t, nil, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 7, got.Day())
	assert.Equal(t, 15, got.Hour())

	bad := NewsRecord{PublishTime: "not-a-time"}
	_, err = bad.PublishedAt()
	assert.NotEqual(t, nil, err)
}
