package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textrank/internal/bm25"
	"textrank/internal/config"
	"textrank/internal/corpus"
	"textrank/internal/graph"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(config.DefaultSummarizerConfig(), WithMetrics(NoopMetrics{}))
}

func buildGraph(t *testing.T, tokenized [][]string) (*graph.Graph, []corpus.Key) {
	t.Helper()
	dict := corpus.NewDictionary(tokenized)
	docs := make([]corpus.Document, len(tokenized))
	for i, tokens := range tokenized {
		docs[i] = dict.DocBow(tokens)
	}
	keys := corpus.Keys(docs)
	return graph.Build(keys), keys
}

func TestWeightGraph_SharedVocabularyCreatesEdges(t *testing.T) {
	svc := newTestService(t)

	g, keys := buildGraph(t, [][]string{
		{"engine", "torque", "piston"},
		{"engine", "torque", "camshaft"},
		{"engine", "piston", "valve"},
	})

	svc.weightGraph(g)

	total := 0
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if g.HasEdge(keys[i], keys[j]) {
				assert.Positive(t, g.EdgeWeight(keys[i], keys[j]))
				total++
			}
		}
	}
	assert.Positive(t, total, "expected at least one similarity edge")
}

func TestWeightGraph_FirstDirectionWins(t *testing.T) {
	svc := newTestService(t)

	// Documents 0 and 1 share "engine" and "torque" but differ in length,
	// so the two directional relevance scores of the pair differ. The
	// remaining documents pad the corpus so the shared terms keep a
	// positive inverse document frequency.
	tokenized := [][]string{
		{"engine", "torque", "piston", "valve"},
		{"engine", "torque"},
		{"camshaft", "gasket", "alternator"},
		{"radiator", "coolant", "thermostat"},
		{"clutch", "flywheel", "gearbox"},
		{"axle", "differential", "bearing"},
	}
	dict := corpus.NewDictionary(tokenized)
	docs := make([]corpus.Document, len(tokenized))
	for i, tokens := range tokenized {
		docs[i] = dict.DocBow(tokens)
	}
	keys := corpus.Keys(docs)
	g := graph.Build(keys)

	scorer := bm25.New(docs, svc.cfg.BM25K1, svc.cfg.BM25B, svc.cfg.BM25Epsilon)
	forward := rowValue(scorer.Row(0), 1)
	backward := rowValue(scorer.Row(1), 0)
	require.NotEqual(t, forward, backward, "setup must produce asymmetric weights")
	require.GreaterOrEqual(t, forward, svc.cfg.WeightThreshold)
	require.GreaterOrEqual(t, backward, svc.cfg.WeightThreshold)

	svc.weightGraph(g)

	// Queries run in ascending node order and an existing edge is never
	// overwritten, so the (0, 1) direction's weight is the one stored.
	require.True(t, g.HasEdge(keys[0], keys[1]))
	assert.Equal(t, forward, g.EdgeWeight(keys[0], keys[1]))
}

func rowValue(row []bm25.Weight, index int) float64 {
	for _, w := range row {
		if w.Index == index {
			return w.Value
		}
	}
	return 0
}

func TestWeightGraph_DisjointVocabularyFallsBackToUniform(t *testing.T) {
	recorder := &recordingMetrics{}
	svc := NewService(config.DefaultSummarizerConfig(), WithMetrics(recorder))

	g, keys := buildGraph(t, [][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
		{"epsilon", "zeta"},
	})

	svc.weightGraph(g)

	// Fallback connects every pair with weight 1.
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			require.True(t, g.HasEdge(keys[i], keys[j]))
			assert.Equal(t, 1.0, g.EdgeWeight(keys[i], keys[j]))
		}
	}
	assert.Equal(t, 1, recorder.degenerate)
}

func TestIsDegenerate(t *testing.T) {
	g, keys := buildGraph(t, [][]string{{"a"}, {"b"}})
	assert.True(t, isDegenerate(g), "edgeless graph is degenerate")

	require.NoError(t, g.AddEdge(keys[0], keys[1], 0.5))
	assert.False(t, isDegenerate(g))
}

func TestRebuildUniform(t *testing.T) {
	g, keys := buildGraph(t, [][]string{{"a"}, {"b"}, {"c"}})
	require.NoError(t, g.AddEdge(keys[0], keys[1], 0.0))

	rebuildUniform(g)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1.0, g.EdgeWeight(keys[0], keys[1]))
	assert.Equal(t, 1.0, g.EdgeWeight(keys[1], keys[2]))
	assert.Equal(t, 1.0, g.EdgeWeight(keys[0], keys[2]))
}

func TestStableSortByScoreDesc(t *testing.T) {
	keys := []corpus.Key{"k1", "k2", "k3", "k4"}
	scores := map[corpus.Key]float64{
		"k1": 0.1,
		"k2": 0.7,
		// k3 missing: counts as zero.
		"k4": 0.7,
	}

	stableSortByScoreDesc(keys, scores)

	// Equal scores keep original order (k2 before k4), missing score last.
	assert.Equal(t, []corpus.Key{"k2", "k4", "k1", "k3"}, keys)
}
