package llm

import (
	"context"
	"fmt"
	"strings"
)

const narrativeSystemPrompt = `You are a financial market analyst. Given a list of scored news items for one asset class on one trading day, write three narrative sections for an analysis report.

Rules:
- market_overview: one paragraph describing the overall state of this market on the given date
- market_analysis: one or two paragraphs interpreting the news items, their sentiment, and what they imply for this asset
- conclusion: one short paragraph with the key takeaway
- Neutral, factual tone; keep numbers, names and percentages from the input
- Do not invent events that are not in the input

Output as JSON only, no other text:
{
  "market_overview": "...",
  "market_analysis": "...",
  "conclusion": "..."
}`

// NarrativeInput is one scored news item handed to the narrative backend.
type NarrativeInput struct {
	Title     string
	Summary   string
	Source    string
	Sentiment float64
}

type NarrativeResult struct {
	MarketOverview string
	MarketAnalysis string
	Conclusion     string
	ModelUsed      string
}

// NarrativeClient writes the report's narrative fragments from scored news.
type NarrativeClient interface {
	Narrate(ctx context.Context, assetName, date string, items []NarrativeInput) (*NarrativeResult, error)
}

func formatNarrativeItems(assetName, date string, items []NarrativeInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Asset: %s\nDate: %s\n\n", assetName, date)
	for i, it := range items {
		fmt.Fprintf(&sb, "%d. Headline: %s\n   Summary: %s\n   Source: %s\n   Sentiment: %+.2f\n\n",
			i+1, it.Title, it.Summary, it.Source, it.Sentiment)
	}
	return sb.String()
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
