package fixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

func TestGenerateCapsAtAvailableTemplates(t *testing.T) {
	records := Generate("gold", 5)

	assert.Equal(t, 3, len(records))
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("https://example.com/news/gold/%d", i+1), r.URL)
	}
}

func TestGenerateExactCount(t *testing.T) {
	assert.Equal(t, 2, len(Generate("oil", 2)))
	assert.Equal(t, 0, len(Generate("oil", 0)))
	assert.Equal(t, 0, len(Generate("oil", -1)))
}

func TestGenerateWellFormedRecords(t *testing.T) {
	records := Generate("crypto", 3)

	for _, r := range records {
		assert.NotEqual(t, "", r.Title)
		assert.Equal(t, r.Title, r.OriginalTitle)
		assert.NotEqual(t, "", r.Content)
		assert.NotEqual(t, "", r.Source)

		_, err := time.Parse(model.PublishTimeLayout, r.PublishTime)
		assert.Equal(t, nil, err)
	}
}

func TestGenerateFallsBackToDefaultTemplates(t *testing.T) {
	records := Generate("bonds", 3)

	assert.Equal(t, 3, len(records))
	// Templates come from the default asset, URLs from the requested key.
	assert.Equal(t, templatesByAsset[DefaultAsset][0].Title, records[0].Title)
	assert.Equal(t, "https://example.com/news/bonds/1", records[0].URL)
}

func TestGenerateDeterministicTemplates(t *testing.T) {
	a := Generate("forex", 3)
	b := Generate("forex", 3)

	assert.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, a[i].AlphaSentiment, b[i].AlphaSentiment)
	}
}
