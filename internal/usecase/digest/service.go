// Package digest builds extractive summaries for every entry of an
// RSS/Atom feed. It fans out over the feed items, optionally fetching the
// full article page when the feed entry carries too little text, and runs
// each article through the summarizer.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"textrank/internal/usecase/summary"
)

// FeedItem represents a single item from an RSS/Atom feed.
type FeedItem struct {
	Title       string
	URL         string
	Content     string
	PublishedAt time.Time
}

// FeedFetcher fetches and parses an RSS/Atom feed from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// ContentFetcher fetches the readable text of an article page.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// Summarizer produces an extractive summary of a text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts summary.Options) (*summary.Summary, error)
}

// EntryDigest is the summarized form of one feed entry. Err is set when
// summarization failed for this entry; the rest of the digest still
// succeeds.
type EntryDigest struct {
	Title       string
	URL         string
	Summary     []string
	PublishedAt time.Time
	Err         error
}

// Config controls the digest fan-out.
type Config struct {
	// Parallelism is the number of entries processed concurrently.
	Parallelism int

	// ContentThreshold is the minimum feed entry length in characters.
	// Entries shorter than this get their full article page fetched.
	ContentThreshold int

	// FetchRate limits outbound article fetches per second. Zero means
	// no limit.
	FetchRate float64

	// SummaryOptions is passed to the summarizer for every entry.
	SummaryOptions summary.Options
}

// DefaultConfig returns digest defaults suitable for interactive use.
func DefaultConfig() Config {
	return Config{
		Parallelism:      5,
		ContentThreshold: 1500,
		FetchRate:        2,
	}
}

// Service orchestrates feed fetching, content enhancement and
// summarization.
type Service struct {
	feeds      FeedFetcher
	content    ContentFetcher
	summarizer Summarizer
	cfg        Config
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewService creates a digest service. content may be nil to disable
// full-article fetching; entries then use the feed text as-is.
func NewService(feeds FeedFetcher, content ContentFetcher, summarizer Summarizer, cfg Config, logger *slog.Logger) *Service {
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.FetchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.FetchRate), 1)
	}

	return &Service{
		feeds:      feeds,
		content:    content,
		summarizer: summarizer,
		cfg:        cfg,
		limiter:    limiter,
		logger:     logger,
	}
}

// Digest fetches the feed at feedURL and summarizes every entry. The
// result preserves feed order. Per-entry summarization failures are
// recorded on the entry instead of aborting the whole digest; only
// context cancellation and feed-level failures return an error.
func (s *Service) Digest(ctx context.Context, feedURL string) ([]EntryDigest, error) {
	start := time.Now()

	items, err := s.feeds.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	if len(items) == 0 {
		s.logger.Info("feed is empty", slog.String("feed_url", feedURL))
		return nil, nil
	}

	digests := make([]EntryDigest, len(items))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Parallelism)

	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			d, err := s.digestEntry(egCtx, item)
			if err != nil {
				return err
			}
			mu.Lock()
			digests[i] = d
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("feed digest completed",
		slog.String("feed_url", feedURL),
		slog.Int("entries", len(items)),
		slog.Duration("duration", time.Since(start)))

	return digests, nil
}

// digestEntry summarizes one feed entry. Summarization failures are
// captured on the digest; context cancellation propagates as an error.
func (s *Service) digestEntry(ctx context.Context, item FeedItem) (EntryDigest, error) {
	d := EntryDigest{
		Title:       item.Title,
		URL:         item.URL,
		PublishedAt: item.PublishedAt,
	}

	text := s.enhanceContent(ctx, item)

	sum, err := s.summarizer.Summarize(ctx, text, s.cfg.SummaryOptions)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return d, err
		}
		s.logger.Warn("summarization failed, skipping entry",
			slog.String("url", item.URL),
			slog.String("title", item.Title),
			slog.Any("error", err))
		d.Err = err
		return d, nil
	}

	d.Summary = sum.Lines()
	return d, nil
}

// enhanceContent returns the text to summarize for an entry. When the
// feed entry is shorter than the configured threshold and a content
// fetcher is available, the full article page is fetched; any failure
// falls back to the feed text. This method never returns an error.
func (s *Service) enhanceContent(ctx context.Context, item FeedItem) string {
	if s.content == nil {
		return item.Content
	}

	if len(item.Content) >= s.cfg.ContentThreshold {
		s.logger.Debug("feed content sufficient, skipping fetch",
			slog.String("url", item.URL),
			slog.Int("length", len(item.Content)))
		return item.Content
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return item.Content
		}
	}

	full, err := s.content.FetchContent(ctx, item.URL)
	if err != nil {
		s.logger.Warn("content fetch failed, using feed text",
			slog.String("url", item.URL),
			slog.Any("error", err))
		return item.Content
	}

	// A shorter extraction usually means the readability pass dropped
	// most of the page. Keep the feed text in that case.
	if len(full) > len(item.Content) {
		return full
	}
	return item.Content
}
