// Command digest summarizes every entry of an RSS/Atom feed.
//
//	digest -feed https://example.com/rss -sentences 3
//	digest -feed https://example.com/rss -json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"textrank/internal/config"
	"textrank/internal/infra/fetcher"
	"textrank/internal/infra/scraper"
	"textrank/internal/observability/logging"
	"textrank/internal/usecase/digest"
	"textrank/internal/usecase/summary"
)

func main() {
	var (
		feed        = flag.String("feed", "", "feed URL to digest (required)")
		ratio       = flag.Float64("ratio", 0, "fraction of sentences to keep per entry")
		sentences   = flag.Int("sentences", 0, "target number of sentences per entry")
		parallelism = flag.Int("parallelism", 5, "number of entries processed concurrently")
		noFetch     = flag.Bool("no-fetch", false, "never fetch full article pages")
		asJSON      = flag.Bool("json", false, "print the digest as JSON")
	)
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	if *feed == "" {
		fmt.Fprintln(os.Stderr, "usage: digest -feed <url> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	sumCfg, err := config.LoadSummarizerConfig()
	if err != nil {
		fatal(logger, err)
	}

	summarizer := summary.NewService(sumCfg,
		summary.WithLogger(logger),
		summary.WithMetrics(summary.NoopMetrics{}))

	var content digest.ContentFetcher
	if !*noFetch {
		fetchCfg, err := fetcher.LoadConfigFromEnv()
		if err != nil {
			fatal(logger, err)
		}
		content = fetcher.NewReadabilityFetcher(fetchCfg)
	}

	cfg := digest.DefaultConfig()
	cfg.Parallelism = *parallelism
	cfg.SummaryOptions = summary.Options{Ratio: *ratio}
	if *sentences > 0 {
		cfg.SummaryOptions.SentenceCount = sentences
	}

	svc := digest.NewService(scraper.NewRSSFetcher(nil), content, summarizer, cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entries, err := svc.Digest(ctx, *feed)
	if err != nil {
		fatal(logger, err)
	}

	if *asJSON {
		printJSON(logger, entries)
		return
	}
	printText(entries)
}

type entryOutput struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Summary     []string `json:"summary,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func printJSON(logger *slog.Logger, entries []digest.EntryDigest) {
	out := make([]entryOutput, len(entries))
	for i, e := range entries {
		out[i] = entryOutput{
			Title:       e.Title,
			URL:         e.URL,
			PublishedAt: e.PublishedAt.Format(time.RFC3339),
			Summary:     e.Summary,
		}
		if e.Err != nil {
			out[i].Error = e.Err.Error()
		}
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal(logger, err)
	}
}

func printText(entries []digest.EntryDigest) {
	for i, e := range entries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n%s\n", e.Title, e.URL)
		if e.Err != nil {
			fmt.Printf("  (no summary: %v)\n", e.Err)
			continue
		}
		for _, line := range e.Summary {
			fmt.Printf("  %s\n", line)
		}
	}
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("digest failed", slog.Any("error", err))
	os.Exit(1)
}
