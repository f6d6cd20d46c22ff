package digest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textrank/internal/domain/entity"
	"textrank/internal/usecase/summary"
)

type stubFeedFetcher struct {
	items []FeedItem
	err   error
}

func (s *stubFeedFetcher) Fetch(ctx context.Context, url string) ([]FeedItem, error) {
	return s.items, s.err
}

type stubContentFetcher struct {
	content string
	err     error
	calls   int
}

func (s *stubContentFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	s.calls++
	return s.content, s.err
}

type stubSummarizer struct {
	err   error
	texts []string
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string, opts summary.Options) (*summary.Summary, error) {
	s.texts = append(s.texts, text)
	if s.err != nil {
		return nil, s.err
	}
	first := text
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		first = text[:idx+1]
	}
	return &summary.Summary{
		Sentences: []entity.Sentence{{Text: first, Index: 0}},
	}, nil
}

func TestDigest_SummarizesEveryEntry(t *testing.T) {
	feeds := &stubFeedFetcher{items: []FeedItem{
		{Title: "A", URL: "https://example.com/a", Content: "Alpha body. More text.", PublishedAt: time.Now()},
		{Title: "B", URL: "https://example.com/b", Content: "Beta body. More text.", PublishedAt: time.Now()},
	}}
	summarizer := &stubSummarizer{}

	cfg := DefaultConfig()
	cfg.FetchRate = 0
	svc := NewService(feeds, nil, summarizer, cfg, nil)

	digests, err := svc.Digest(context.Background(), "https://example.com/feed")
	require.NoError(t, err)
	require.Len(t, digests, 2)

	// Feed order is preserved regardless of goroutine scheduling.
	assert.Equal(t, "A", digests[0].Title)
	assert.Equal(t, "B", digests[1].Title)
	assert.Equal(t, []string{"Alpha body."}, digests[0].Summary)
	assert.Equal(t, []string{"Beta body."}, digests[1].Summary)
}

func TestDigest_FeedError(t *testing.T) {
	feeds := &stubFeedFetcher{err: errors.New("boom")}
	svc := NewService(feeds, nil, &stubSummarizer{}, DefaultConfig(), nil)

	_, err := svc.Digest(context.Background(), "https://example.com/feed")
	assert.Error(t, err)
}

func TestDigest_EmptyFeed(t *testing.T) {
	feeds := &stubFeedFetcher{}
	svc := NewService(feeds, nil, &stubSummarizer{}, DefaultConfig(), nil)

	digests, err := svc.Digest(context.Background(), "https://example.com/feed")
	require.NoError(t, err)
	assert.Empty(t, digests)
}

func TestDigest_EntryFailureDoesNotAbort(t *testing.T) {
	feeds := &stubFeedFetcher{items: []FeedItem{
		{Title: "A", URL: "https://example.com/a", Content: "Only one sentence"},
	}}
	summarizer := &stubSummarizer{err: entity.ErrTooFewSentences}
	svc := NewService(feeds, nil, summarizer, DefaultConfig(), nil)

	digests, err := svc.Digest(context.Background(), "https://example.com/feed")
	require.NoError(t, err)
	require.Len(t, digests, 1)
	assert.ErrorIs(t, digests[0].Err, entity.ErrTooFewSentences)
	assert.Empty(t, digests[0].Summary)
}

func TestEnhanceContent_FetchesShortEntries(t *testing.T) {
	long := strings.Repeat("Full article text. ", 200)
	content := &stubContentFetcher{content: long}

	cfg := DefaultConfig()
	cfg.ContentThreshold = 100
	cfg.FetchRate = 0
	svc := NewService(&stubFeedFetcher{}, content, &stubSummarizer{}, cfg, nil)

	got := svc.enhanceContent(context.Background(), FeedItem{URL: "https://example.com/a", Content: "short"})
	assert.Equal(t, long, got)
	assert.Equal(t, 1, content.calls)
}

func TestEnhanceContent_SkipsSufficientEntries(t *testing.T) {
	content := &stubContentFetcher{content: "ignored"}

	cfg := DefaultConfig()
	cfg.ContentThreshold = 10
	cfg.FetchRate = 0
	svc := NewService(&stubFeedFetcher{}, content, &stubSummarizer{}, cfg, nil)

	feedText := "this entry already has enough text to summarize"
	got := svc.enhanceContent(context.Background(), FeedItem{Content: feedText})
	assert.Equal(t, feedText, got)
	assert.Zero(t, content.calls)
}

func TestEnhanceContent_FallsBackOnError(t *testing.T) {
	content := &stubContentFetcher{err: errors.New("unreachable")}

	cfg := DefaultConfig()
	cfg.ContentThreshold = 100
	cfg.FetchRate = 0
	svc := NewService(&stubFeedFetcher{}, content, &stubSummarizer{}, cfg, nil)

	got := svc.enhanceContent(context.Background(), FeedItem{Content: "short"})
	assert.Equal(t, "short", got)
}

func TestEnhanceContent_KeepsLongerFeedText(t *testing.T) {
	content := &stubContentFetcher{content: "tiny"}

	cfg := DefaultConfig()
	cfg.ContentThreshold = 100
	cfg.FetchRate = 0
	svc := NewService(&stubFeedFetcher{}, content, &stubSummarizer{}, cfg, nil)

	feedText := "somewhat longer feed text"
	got := svc.enhanceContent(context.Background(), FeedItem{Content: feedText})
	assert.Equal(t, feedText, got)
}
