package news

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const publishTimeLayout = "20060102T150405"

// FinnhubClient serves general market news through the same feed shape as
// Alpha Vantage. Finnhub carries no sentiment signal, so items come back with
// a zero sentiment score. Keywords are ignored; Finnhub's general category is
// not keyword-addressable.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubClient{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) FetchFeed(ctx context.Context, keywords string, limit int) (*Feed, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}

	feed := &Feed{HasFeed: true}
	if raw, err := json.Marshal(res); err == nil {
		feed.Raw = raw
	}

	for _, n := range res {
		if limit > 0 && len(feed.Items) >= limit {
			break
		}

		var item FeedItem
		if n.Headline != nil {
			item.Title = *n.Headline
		}
		if n.Summary != nil {
			item.Summary = *n.Summary
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if n.Source != nil {
			item.Source = *n.Source
		}
		if n.Datetime != nil {
			item.TimePublished = time.Unix(*n.Datetime, 0).UTC().Format(publishTimeLayout)
		}

		feed.Items = append(feed.Items, item)
	}

	return feed, nil
}
