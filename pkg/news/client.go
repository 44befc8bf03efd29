package news

import (
	"context"
	"encoding/json"
)

// FeedItem is one raw news item as delivered by a provider.
type FeedItem struct {
	Title                 string  `json:"title"`
	Summary               string  `json:"summary"`
	TimePublished         string  `json:"time_published"`
	Source                string  `json:"source"`
	URL                   string  `json:"url"`
	OverallSentimentScore float64 `json:"overall_sentiment_score"`
}

// Feed is a provider response. HasFeed is false when the response lacks the
// feed container entirely (rate limiting, empty results) -- a recoverable
// condition, not a parse error. Raw preserves the exact provider payload.
type Feed struct {
	Raw     json.RawMessage
	HasFeed bool
	Items   []FeedItem
}

type Client interface {
	FetchFeed(ctx context.Context, keywords string, limit int) (*Feed, error)
	Name() string
}
