// Package scraper provides implementations for fetching RSS/Atom feeds.
// It uses the gofeed library to parse feed content with reliability patterns.
package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"textrank/internal/resilience/circuitbreaker"
	"textrank/internal/resilience/retry"
	"textrank/internal/usecase/digest"
)

// RSSFetcher implements digest.FeedFetcher using the gofeed library.
// It includes circuit breaker and retry logic for improved reliability,
// and strips markup from entry bodies so the summarizer sees plain text.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// A nil client uses http.DefaultClient.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// Fetch retrieves and parses an RSS/Atom feed from the given URL.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]digest.FeedItem, error) {
	var items []digest.FeedItem

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}

		items = cbResult.([]digest.FeedItem)
		return nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	return items, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) ([]digest.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "TextRankBot"
	if f.client != nil {
		fp.Client = f.client
	}

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]digest.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		pubAt := time.Now()
		if it.PublishedParsed != nil {
			pubAt = *it.PublishedParsed
		}

		// Prefer the full content element over the description.
		content := it.Content
		if content == "" {
			content = it.Description
		}

		items = append(items, digest.FeedItem{
			Title:       it.Title,
			URL:         it.Link,
			Content:     stripHTML(content),
			PublishedAt: pubAt,
		})
	}

	return items, nil
}

// stripHTML extracts the text content of an HTML fragment. Feed entries
// frequently carry markup in their description or content elements, which
// would otherwise pollute the summarizer's token stream. Plain text passes
// through unchanged.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
