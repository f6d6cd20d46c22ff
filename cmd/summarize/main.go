// Command summarize produces an extractive summary of a text.
//
// The input comes from a file, a URL (fetched and run through readability
// extraction) or standard input:
//
//	summarize -file article.txt -ratio 0.3
//	summarize -url https://example.com/post -words 150
//	cat article.txt | summarize -sentences 3 -split
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"textrank/internal/config"
	"textrank/internal/domain/entity"
	"textrank/internal/infra/fetcher"
	"textrank/internal/observability/logging"
	"textrank/internal/usecase/summary"
)

func main() {
	var (
		file      = flag.String("file", "", "read the text from this file")
		url       = flag.String("url", "", "fetch the text from this URL")
		ratio     = flag.Float64("ratio", 0, "fraction of sentences to keep, in (0, 1]")
		words     = flag.Int("words", 0, "target word count of the summary")
		sentences = flag.Int("sentences", 0, "target number of distinct sentences")
		split     = flag.Bool("split", false, "print one sentence per line instead of a joined block")
		asJSON    = flag.Bool("json", false, "print the summary as JSON")
	)
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	text, err := readInput(*file, *url)
	if err != nil {
		fatal(logger, err)
	}

	cfg, err := config.LoadSummarizerConfig()
	if err != nil {
		fatal(logger, err)
	}

	svc := summary.NewService(cfg,
		summary.WithLogger(logger),
		summary.WithMetrics(summary.NoopMetrics{}))

	opts := summary.Options{Ratio: *ratio}
	if *words > 0 {
		opts.WordCount = words
	}
	if *sentences > 0 {
		opts.SentenceCount = sentences
	}

	sum, err := svc.Summarize(context.Background(), text, opts)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fatal(logger, err)
	}

	if err := printSummary(sum, *split, *asJSON); err != nil {
		fatal(logger, err)
	}
}

// readInput resolves the input text from the file flag, the url flag or
// standard input, in that order of precedence.
func readInput(file, url string) (string, error) {
	switch {
	case file != "" && url != "":
		return "", errors.New("at most one of -file and -url may be set")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	case url != "":
		cfg, err := fetcher.LoadConfigFromEnv()
		if err != nil {
			return "", err
		}
		f := fetcher.NewReadabilityFetcher(cfg)
		return f.FetchContent(context.Background(), url)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func printSummary(sum *summary.Summary, split, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		if split {
			return enc.Encode(map[string][]string{"sentences": sum.Lines()})
		}
		return enc.Encode(map[string]string{"summary": sum.Text()})
	}

	if split {
		for _, line := range sum.Lines() {
			fmt.Println(line)
		}
		return nil
	}

	fmt.Println(sum.Text())
	return nil
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("summarize failed", slog.Any("error", err))
	os.Exit(1)
}
