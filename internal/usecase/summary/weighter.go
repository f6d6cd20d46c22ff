package summary

import (
	"log/slog"
	"sort"

	"textrank/internal/bm25"
	"textrank/internal/corpus"
	"textrank/internal/graph"
)

// weightGraph fills the similarity graph with pairwise BM25 weights, in
// place. The graph's nodes (in insertion order, duplicates already merged)
// form the scoring corpus: each node acts in turn as a query against all
// others, and weights at or above the configured threshold become edges.
//
// The pairwise relation is asymmetric but the graph is undirected, so an
// explicit tie-break applies: queries are processed in ascending node
// order, candidates in ascending index order, and an existing edge is
// never overwritten. The weight of the ordered pair (i, j) with i < j
// therefore always wins over (j, i).
//
// If after all pairs no edge carries a positive weight, the input is
// degenerate (no measurable similarity); the graph is rebuilt as a
// complete graph with uniform weight 1 so the ranking step still has a
// non-trivial structure to operate on.
func (s *Service) weightGraph(g *graph.Graph) {
	nodes := g.Nodes()

	docs := make([]corpus.Document, len(nodes))
	for i, k := range nodes {
		docs[i] = corpus.ParseKey(k)
	}

	scorer := bm25.New(docs, s.cfg.BM25K1, s.cfg.BM25B, s.cfg.BM25Epsilon)

	for i := range docs {
		if i > 0 && i%1000 == 0 {
			s.logger.Debug("weighting similarity graph",
				slog.Int("processed", i),
				slog.Int("total", len(docs)))
		}

		row := scorer.Row(i)
		sort.Slice(row, func(a, b int) bool { return row[a].Index < row[b].Index })

		for _, w := range row {
			j := w.Index
			if i == j || w.Value < s.cfg.WeightThreshold {
				continue
			}
			if g.HasEdge(nodes[i], nodes[j]) {
				// The reverse direction was processed first; its weight stands.
				continue
			}
			if err := g.AddEdge(nodes[i], nodes[j], w.Value); err != nil {
				s.logger.Error("failed to add similarity edge", slog.Any("error", err))
			}
		}
	}

	if isDegenerate(g) {
		s.logger.Warn("no measurable similarity between sentences, falling back to uniform weights")
		s.metrics.RecordDegenerateFallback()
		rebuildUniform(g)
	}
}

// isDegenerate reports whether the graph carries no positive-weight edge.
// A graph without edges at all is degenerate as well.
func isDegenerate(g *graph.Graph) bool {
	for _, e := range g.Edges() {
		if e.Weight > 0 {
			return false
		}
	}
	return true
}

// rebuildUniform discards all edges and connects every distinct node pair
// with weight 1, in place.
func rebuildUniform(g *graph.Graph) {
	nodes := g.Nodes()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if g.HasEdge(nodes[i], nodes[j]) {
				_ = g.DelEdge(nodes[i], nodes[j])
			}
			_ = g.AddEdge(nodes[i], nodes[j], 1)
		}
	}
}

// stableSortByScoreDesc sorts keys by importance score descending, in
// place. The sort is stable, so equal scores (including keys missing from
// the map, which count as zero) keep their original corpus order.
func stableSortByScoreDesc(keys []corpus.Key, scores map[corpus.Key]float64) {
	sort.SliceStable(keys, func(i, j int) bool {
		return scores[keys[i]] > scores[keys[j]]
	})
}
