// Package pagerank implements weighted PageRank over the similarity graph.
// It is the default eigenvector-ranking procedure of the pipeline: the
// principal eigenvector of the damped transition matrix is approximated by
// power iteration, and the resulting per-node scores sum to one.
package pagerank

import (
	"math"

	"textrank/internal/corpus"
	"textrank/internal/graph"
)

// Default iteration parameters.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 100
)

// Ranker computes weighted PageRank scores. The zero value is not usable;
// construct with New or fill every field.
type Ranker struct {
	// Damping is the probability of following an edge rather than
	// teleporting to a random node.
	Damping float64

	// Tolerance is the L1 convergence threshold between iterations.
	Tolerance float64

	// MaxIterations caps the power iteration when convergence is slow.
	MaxIterations int
}

// New creates a Ranker with the default parameters.
func New() *Ranker {
	return &Ranker{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Rank returns the importance score of every node in the graph. Scores are
// non-negative and sum to 1. An empty graph yields an empty map.
func (r *Ranker) Rank(g *graph.Graph) map[corpus.Key]float64 {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return map[corpus.Key]float64{}
	}

	index := make(map[corpus.Key]int, n)
	for i, node := range nodes {
		index[node] = i
	}

	// Outgoing weight totals; in an undirected graph these are the summed
	// incident weights per node.
	outWeight := make([]float64, n)
	type link struct {
		from   int
		weight float64
	}
	incoming := make([][]link, n)
	for _, e := range g.Edges() {
		u, v := index[e.U], index[e.V]
		outWeight[u] += e.Weight
		outWeight[v] += e.Weight
		incoming[u] = append(incoming[u], link{from: v, weight: e.Weight})
		incoming[v] = append(incoming[v], link{from: u, weight: e.Weight})
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	base := (1 - r.Damping) / float64(n)
	next := make([]float64, n)
	for iter := 0; iter < r.MaxIterations; iter++ {
		// Mass of nodes without outgoing weight is redistributed uniformly.
		dangling := 0.0
		for i := range scores {
			if outWeight[i] == 0 {
				dangling += scores[i]
			}
		}

		delta := 0.0
		for i := range next {
			sum := 0.0
			for _, l := range incoming[i] {
				sum += scores[l.from] * l.weight / outWeight[l.from]
			}
			next[i] = base + r.Damping*(sum+dangling/float64(n))
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores

		if delta < r.Tolerance {
			break
		}
	}

	// Normalize so scores sum to exactly 1.
	total := 0.0
	for _, s := range scores {
		total += s
	}
	result := make(map[corpus.Key]float64, n)
	for i, node := range nodes {
		result[node] = scores[i] / total
	}
	return result
}
