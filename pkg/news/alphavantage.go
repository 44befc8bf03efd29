package news

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

// RetryOptions configure the transport-level retry policy. Retries apply to
// the network call only, never to parsing.
type RetryOptions struct {
	Count   int
	Delay   time.Duration
	Timeout time.Duration
}

type AlphaVantageClient struct {
	apiKey string
	client *resty.Client
}

func NewAlphaVantageClient(apiKey string, opts RetryOptions) *AlphaVantageClient {
	client := resty.New().
		SetBaseURL(alphaVantageBaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Count).
		SetRetryWaitTime(opts.Delay).
		SetRetryMaxWaitTime(opts.Delay)

	return &AlphaVantageClient{apiKey: apiKey, client: client}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) FetchFeed(ctx context.Context, keywords string, limit int) (*Feed, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "NEWS_SENTIMENT",
			"apikey":   c.apiKey,
			"keywords": keywords,
			"sort":     "RELEVANCE",
			"limit":    strconv.Itoa(limit),
		}).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}

	body := resp.Body()

	var probe struct {
		Feed json.RawMessage `json:"feed"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	feed := &Feed{Raw: append(json.RawMessage(nil), body...)}
	if probe.Feed == nil {
		return feed, nil
	}

	feed.HasFeed = true
	if err := json.Unmarshal(probe.Feed, &feed.Items); err != nil {
		return nil, fmt.Errorf("alphavantage decode feed: %w", err)
	}

	return feed, nil
}
