// Package summary implements the extractive summarization use case. It
// ranks sentences by mutual similarity with a TextRank variant: sentences
// become bag-of-words documents, pairwise BM25 weights fill an undirected
// similarity graph, and an eigenvector ranking procedure scores each
// sentence's centrality. A selection policy then picks the final subset.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"textrank/internal/config"
	"textrank/internal/corpus"
	"textrank/internal/domain/entity"
	"textrank/internal/graph"
	"textrank/internal/observability/tracing"
	"textrank/internal/pagerank"
	"textrank/internal/textcleaner"
)

// minRankableNodes is the smallest graph for which the eigenvector
// computation is well-posed. Below it the ranking step is skipped and an
// empty summary is returned.
const minRankableNodes = 3

// Ranker turns a weighted similarity graph into per-node importance
// scores. Nodes pruned before ranking are simply absent from the result;
// callers treat them as score zero. The default implementation is weighted
// PageRank, but any algorithm with this shape can be injected.
type Ranker interface {
	Rank(g *graph.Graph) map[corpus.Key]float64
}

// Segmenter splits raw text into sentences with normalized tokens.
type Segmenter interface {
	SplitSentences(text string) []entity.Sentence
}

// Service orchestrates the summarization pipeline. It holds no per-call
// state: every invocation builds its own corpus and graph, so a single
// Service is safe for concurrent use as long as its collaborators are.
type Service struct {
	cfg     config.SummarizerConfig
	cleaner Segmenter
	ranker  Ranker
	logger  *slog.Logger
	metrics MetricsRecorder
}

// Option customizes a Service.
type Option func(*Service)

// WithRanker replaces the default PageRank ranker.
func WithRanker(r Ranker) Option {
	return func(s *Service) { s.ranker = r }
}

// WithSegmenter replaces the default sentence segmenter.
func WithSegmenter(seg Segmenter) Option {
	return func(s *Service) { s.cleaner = seg }
}

// WithLogger sets the structured logger used for pipeline warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a summarization service from the given configuration.
// Unset collaborators default to the built-in cleaner, a PageRank ranker
// with the configured parameters, the process logger and Prometheus metrics.
func NewService(cfg config.SummarizerConfig, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.cleaner == nil {
		if len(cfg.Stopwords) > 0 {
			s.cleaner = textcleaner.NewWithStopwords(cfg.Stopwords)
		} else {
			s.cleaner = textcleaner.New()
		}
	}
	if s.ranker == nil {
		s.ranker = &pagerank.Ranker{
			Damping:       cfg.PageRankDamping,
			Tolerance:     cfg.PageRankTolerance,
			MaxIterations: cfg.PageRankMaxIterations,
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.metrics == nil {
		s.metrics = NewPrometheusMetrics()
	}
	return s
}

// Options are the per-call selection parameters of Summarize.
// At most one of WordCount and SentenceCount may be set; when either is
// set the ratio is ignored entirely and truncation operates over the full
// ranked order.
type Options struct {
	// Ratio is the fraction of sentences to keep, in (0, 1].
	// Zero means the configured default.
	Ratio float64

	// WordCount is the optional target word total of the summary.
	WordCount *int

	// SentenceCount is the optional target number of distinct sentences.
	SentenceCount *int
}

// validate checks the options and returns the effective ratio.
func (o Options) validate(defaultRatio float64) (float64, error) {
	if o.WordCount != nil && o.SentenceCount != nil {
		return 0, entity.ErrConflictingTargets
	}
	if o.WordCount != nil && *o.WordCount < 0 {
		return 0, entity.ErrInvalidWordCount
	}
	if o.SentenceCount != nil && *o.SentenceCount < 1 {
		return 0, entity.ErrInvalidSentenceCount
	}

	// A counting target truncates over the full ranked order; the ratio is
	// not consulted and not validated.
	if o.WordCount != nil || o.SentenceCount != nil {
		return 1, nil
	}

	ratio := o.Ratio
	if ratio == 0 {
		ratio = defaultRatio
	}
	if ratio <= 0 || ratio > 1 {
		return 0, entity.ErrInvalidRatio
	}
	return ratio, nil
}

// Summary is the result of a summarization call: the selected sentences in
// importance order (most important first).
type Summary struct {
	Sentences []entity.Sentence
}

// IsEmpty reports whether no sentences were selected.
func (s *Summary) IsEmpty() bool {
	return len(s.Sentences) == 0
}

// Lines returns the display text of each selected sentence, in order.
func (s *Summary) Lines() []string {
	lines := make([]string, len(s.Sentences))
	for i, sentence := range s.Sentences {
		lines[i] = sentence.Text
	}
	return lines
}

// Text returns the summary as a single newline-joined string.
func (s *Summary) Text() string {
	return strings.Join(s.Lines(), "\n")
}

// Summarize produces an extractive summary of the given text.
//
// Degenerate inputs are not errors: zero detected sentences, or a corpus
// the ranking step cannot score, yield an empty Summary with a warning
// log. The single fatal input is a text with exactly one sentence, which
// fails with entity.ErrTooFewSentences.
func (s *Service) Summarize(ctx context.Context, text string, opts Options) (*Summary, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "summarize")
	defer span.End()

	start := time.Now()

	ratio, err := opts.validate(s.cfg.DefaultRatio)
	if err != nil {
		return nil, err
	}

	sentences := s.cleaner.SplitSentences(text)
	switch {
	case len(sentences) == 0:
		s.logger.Warn("input text is empty")
		s.metrics.RecordEmptyResult()
		return &Summary{}, nil
	case len(sentences) == 1:
		return nil, entity.ErrTooFewSentences
	case len(sentences) < s.cfg.MinSentences:
		s.logger.Warn("input text is shorter than recommended",
			slog.Int("sentences", len(sentences)),
			slog.Int("recommended_min", s.cfg.MinSentences))
	}

	docs := corpus.Build(sentences)

	ranked, err := s.SummarizeCorpus(ctx, docs, ratio)
	if err != nil {
		return nil, fmt.Errorf("summarize corpus: %w", err)
	}
	if len(ranked) == 0 {
		s.logger.Warn("could not get relevant sentences")
		s.metrics.RecordEmptyResult()
		return &Summary{}, nil
	}

	selected := selectSentences(sentences, docs, ranked, opts)

	s.metrics.RecordSentenceCount(len(selected))
	s.metrics.RecordDuration(time.Since(start))

	return &Summary{Sentences: selected}, nil
}

// SummarizeCorpus returns the most important documents of the corpus,
// sorted by importance descending, truncated to floor(len(docs) * ratio).
// Ties are broken by original corpus order (the sort is stable and
// documents absent from the score map count as zero).
func (s *Service) SummarizeCorpus(ctx context.Context, docs []corpus.Document, ratio float64) ([]corpus.Document, error) {
	_, span := tracing.GetTracer().Start(ctx, "summarize-corpus")
	defer span.End()

	if ratio <= 0 || ratio > 1 {
		return nil, entity.ErrInvalidRatio
	}

	if len(docs) == 0 {
		s.logger.Warn("input corpus is empty")
		return nil, nil
	}
	if len(docs) < s.cfg.MinSentences {
		s.logger.Warn("input corpus is smaller than recommended",
			slog.Int("documents", len(docs)),
			slog.Int("recommended_min", s.cfg.MinSentences))
	}

	keys := corpus.Keys(docs)

	g := graph.Build(keys)
	s.weightGraph(g)
	graph.RemoveUnreachable(g)

	// The eigenvector computation is ill-posed on tiny graphs.
	if g.NodeCount() < minRankableNodes {
		s.logger.Warn("not enough reachable sentences to rank",
			slog.Int("reachable", g.NodeCount()),
			slog.Int("required", minRankableNodes))
		return nil, nil
	}

	scores := s.ranker.Rank(g)

	ranked := make([]corpus.Key, len(keys))
	copy(ranked, keys)
	stableSortByScoreDesc(ranked, scores)

	limit := int(float64(len(docs)) * ratio)
	out := make([]corpus.Document, 0, limit)
	for _, k := range ranked[:limit] {
		out = append(out, corpus.ParseKey(k))
	}
	return out, nil
}
