package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

func sampleTop() []model.ScoredRecord {
	return []model.ScoredRecord{
		{
			Record:          model.NewsRecord{Source: "Reuters"},
			Title:           "OPEC Extends Cuts",
			SentimentScore:  0.35,
			ImportanceScore: 70,
			RelevanceScore:  model.DefaultRelevance,
			Summary:         "Production cuts extended through year end.",
		},
		{
			Record:          model.NewsRecord{Source: "Bloomberg"},
			Title:           "Inventories Fall",
			SentimentScore:  -0.12,
			ImportanceScore: 55,
			RelevanceScore:  model.DefaultRelevance,
			Summary:         "US crude stocks dropped unexpectedly.",
		},
	}
}

func TestAssemble(t *testing.T) {
	r, err := Assemble("Crude Oil", "20250307", sampleTop(),
		"Prices held firm.", "Supply remains tight.", "Constructive backdrop.")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Crude Oil Market News Analysis", r.Title)
	assert.Equal(t, "20250307", r.Date)
	assert.Equal(t, "Crude Oil", r.AssetName)
	assert.NotEqual(t, "", r.GenerationTime)

	assert.Equal(t, true, strings.Contains(r.NewsSummary, "1. **OPEC Extends Cuts**"))
	assert.Equal(t, true, strings.Contains(r.NewsSummary, "2. **Inventories Fall**"))
	assert.Equal(t, true, strings.Contains(r.NewsSummary, "Reuters"))
}

func TestAssembleMissingSection(t *testing.T) {
	cases := []struct {
		overview, analysis, conclusion string
	}{
		{"", "analysis", "conclusion"},
		{"overview", "  ", "conclusion"},
		{"overview", "analysis", ""},
	}

	for _, c := range cases {
		_, err := Assemble("Gold", "20250307", nil, c.overview, c.analysis, c.conclusion)
		assert.Equal(t, true, errors.Is(err, ErrMissingSection))
	}
}

func TestAssembleNoMaterialNews(t *testing.T) {
	r, err := Assemble("Gold", "20250307", nil,
		"Quiet session.", "Nothing moved markets.", "Wait and see.")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(r.NewsSummary, "No material news"))
}

func TestAssembledMarkdownLayout(t *testing.T) {
	r, _ := Assemble("Crude Oil", "20250307", sampleTop(),
		"Prices held firm.", "Supply remains tight.", "Constructive backdrop.")

	md := r.ToMarkdown()
	for _, want := range []string{
		"**Crude Oil Market Analysis Report**",
		"#### **1. Market Overview**",
		"#### **2. Key News Summary**",
		"#### **3. Market Analysis**",
		"### **Conclusion**",
		"(Report generated:",
	} {
		assert.Equal(t, true, strings.Contains(md, want))
	}
}
