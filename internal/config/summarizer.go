// Package config holds application configuration loaded from environment
// variables, with optional overrides from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"textrank/internal/domain/entity"
	pkgconfig "textrank/pkg/config"
)

// SummarizerConfig holds the tunable parameters of the summarization
// pipeline. All values have working defaults; environment variables and an
// optional YAML file can override them.
type SummarizerConfig struct {
	// DefaultRatio is the selection fraction used when the caller supplies
	// no explicit ratio or target. Must be in (0, 1]. Default: 0.2.
	DefaultRatio float64 `yaml:"default_ratio"`

	// WeightThreshold is the minimal pairwise relevance weight for an edge
	// to enter the similarity graph. Default: 1e-3.
	WeightThreshold float64 `yaml:"weight_threshold"`

	// MinSentences is the recommended minimum number of input sentences.
	// Inputs below it (but above one) are processed with a warning.
	// Default: 2.
	MinSentences int `yaml:"min_sentences"`

	// BM25 free parameters.
	BM25K1      float64 `yaml:"bm25_k1"`      // Default: 1.5
	BM25B       float64 `yaml:"bm25_b"`       // Default: 0.75
	BM25Epsilon float64 `yaml:"bm25_epsilon"` // Default: 0.25

	// PageRank iteration parameters.
	PageRankDamping       float64 `yaml:"pagerank_damping"`        // Default: 0.85
	PageRankTolerance     float64 `yaml:"pagerank_tolerance"`      // Default: 1e-8
	PageRankMaxIterations int     `yaml:"pagerank_max_iterations"` // Default: 100

	// Stopwords optionally replaces the built-in stopword list.
	Stopwords []string `yaml:"stopwords"`
}

// DefaultSummarizerConfig returns the configuration matching the reference
// pipeline parameters.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		DefaultRatio:          0.2,
		WeightThreshold:       1e-3,
		MinSentences:          2,
		BM25K1:                1.5,
		BM25B:                 0.75,
		BM25Epsilon:           0.25,
		PageRankDamping:       0.85,
		PageRankTolerance:     1e-8,
		PageRankMaxIterations: 100,
	}
}

// LoadSummarizerConfig loads configuration from environment variables on
// top of the defaults. If SUMMARIZER_CONFIG_FILE points to a YAML file, the
// file is applied first and environment variables override it.
//
// Environment variables:
//   - SUMMARIZER_CONFIG_FILE: optional YAML overrides file
//   - SUMMARIZER_DEFAULT_RATIO: float in (0, 1] (default: 0.2)
//   - SUMMARIZER_WEIGHT_THRESHOLD: float (default: 0.001)
//   - SUMMARIZER_MIN_SENTENCES: integer (default: 2)
//   - SUMMARIZER_BM25_K1, SUMMARIZER_BM25_B, SUMMARIZER_BM25_EPSILON
//   - SUMMARIZER_PAGERANK_DAMPING, SUMMARIZER_PAGERANK_TOLERANCE,
//     SUMMARIZER_PAGERANK_MAX_ITERATIONS
//   - SUMMARIZER_STOPWORDS: comma-separated stopword list override
func LoadSummarizerConfig() (SummarizerConfig, error) {
	cfg := DefaultSummarizerConfig()

	if path := os.Getenv("SUMMARIZER_CONFIG_FILE"); path != "" {
		fileCfg, err := loadSummarizerConfigFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	cfg.DefaultRatio = pkgconfig.GetEnvFloat("SUMMARIZER_DEFAULT_RATIO", cfg.DefaultRatio)
	cfg.WeightThreshold = pkgconfig.GetEnvFloat("SUMMARIZER_WEIGHT_THRESHOLD", cfg.WeightThreshold)
	cfg.MinSentences = pkgconfig.GetEnvInt("SUMMARIZER_MIN_SENTENCES", cfg.MinSentences)
	cfg.BM25K1 = pkgconfig.GetEnvFloat("SUMMARIZER_BM25_K1", cfg.BM25K1)
	cfg.BM25B = pkgconfig.GetEnvFloat("SUMMARIZER_BM25_B", cfg.BM25B)
	cfg.BM25Epsilon = pkgconfig.GetEnvFloat("SUMMARIZER_BM25_EPSILON", cfg.BM25Epsilon)
	cfg.PageRankDamping = pkgconfig.GetEnvFloat("SUMMARIZER_PAGERANK_DAMPING", cfg.PageRankDamping)
	cfg.PageRankTolerance = pkgconfig.GetEnvFloat("SUMMARIZER_PAGERANK_TOLERANCE", cfg.PageRankTolerance)
	cfg.PageRankMaxIterations = pkgconfig.GetEnvInt("SUMMARIZER_PAGERANK_MAX_ITERATIONS", cfg.PageRankMaxIterations)
	cfg.Stopwords = pkgconfig.GetEnvStringList("SUMMARIZER_STOPWORDS", cfg.Stopwords)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("summarizer configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadSummarizerConfigFile applies YAML overrides from path on top of base.
func loadSummarizerConfigFile(path string, base SummarizerConfig) (SummarizerConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's environment
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *SummarizerConfig) Validate() error {
	if c.DefaultRatio <= 0 || c.DefaultRatio > 1 {
		return &entity.ValidationError{Field: "default_ratio", Message: fmt.Sprintf("must be in (0, 1], got %g", c.DefaultRatio)}
	}
	if c.WeightThreshold < 0 {
		return &entity.ValidationError{Field: "weight_threshold", Message: fmt.Sprintf("must be non-negative, got %g", c.WeightThreshold)}
	}
	if c.MinSentences < 2 {
		return &entity.ValidationError{Field: "min_sentences", Message: fmt.Sprintf("must be at least 2, got %d", c.MinSentences)}
	}
	if c.BM25K1 <= 0 {
		return &entity.ValidationError{Field: "bm25_k1", Message: fmt.Sprintf("must be positive, got %g", c.BM25K1)}
	}
	if c.BM25B < 0 || c.BM25B > 1 {
		return &entity.ValidationError{Field: "bm25_b", Message: fmt.Sprintf("must be in [0, 1], got %g", c.BM25B)}
	}
	if c.BM25Epsilon <= 0 {
		return &entity.ValidationError{Field: "bm25_epsilon", Message: fmt.Sprintf("must be positive, got %g", c.BM25Epsilon)}
	}
	if c.PageRankDamping <= 0 || c.PageRankDamping >= 1 {
		return &entity.ValidationError{Field: "pagerank_damping", Message: fmt.Sprintf("must be in (0, 1), got %g", c.PageRankDamping)}
	}
	if c.PageRankTolerance <= 0 {
		return &entity.ValidationError{Field: "pagerank_tolerance", Message: fmt.Sprintf("must be positive, got %g", c.PageRankTolerance)}
	}
	if c.PageRankMaxIterations < 1 {
		return &entity.ValidationError{Field: "pagerank_max_iterations", Message: fmt.Sprintf("must be positive, got %d", c.PageRankMaxIterations)}
	}
	return nil
}
