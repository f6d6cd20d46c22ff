// Package graph provides the undirected weighted graph used as the
// similarity structure during ranking. Nodes are canonical document keys,
// kept in insertion order; each unordered pair of distinct nodes carries at
// most one non-negative weight.
package graph

import (
	"errors"
	"fmt"

	"textrank/internal/corpus"
)

// Sentinel errors for graph mutations.
var (
	ErrUnknownNode   = errors.New("node not in graph")
	ErrSelfEdge      = errors.New("self edges are not allowed")
	ErrDuplicateEdge = errors.New("edge already exists")
	ErrMissingEdge   = errors.New("edge not in graph")
)

// Edge is an undirected weighted edge between two nodes.
type Edge struct {
	U, V   corpus.Key
	Weight float64
}

// Graph is an undirected weighted graph over document keys. It is not safe
// for concurrent use; each pipeline invocation owns its own instance.
type Graph struct {
	order     []corpus.Key
	adjacency map[corpus.Key]map[corpus.Key]float64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adjacency: make(map[corpus.Key]map[corpus.Key]float64)}
}

// Build creates a graph with the given nodes and no edges. Duplicate keys
// merge into one node, so the node count can be smaller than the input.
func Build(nodes []corpus.Key) *Graph {
	g := New()
	for _, n := range nodes {
		g.AddNode(n)
	}
	return g
}

// AddNode adds a node; adding an existing node is a no-op.
func (g *Graph) AddNode(n corpus.Key) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = make(map[corpus.Key]float64)
	g.order = append(g.order, n)
}

// HasNode reports whether the node is in the graph.
func (g *Graph) HasNode(n corpus.Key) bool {
	_, ok := g.adjacency[n]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []corpus.Key {
	out := make([]corpus.Key, len(g.order))
	copy(out, g.order)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// DelNode removes a node and all its incident edges.
func (g *Graph) DelNode(n corpus.Key) {
	neighbors, ok := g.adjacency[n]
	if !ok {
		return
	}
	for other := range neighbors {
		delete(g.adjacency[other], n)
	}
	delete(g.adjacency, n)
	for i, k := range g.order {
		if k == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// AddEdge adds an undirected edge with the given weight. The weight must be
// non-negative, both endpoints must exist, self edges are rejected, and an
// existing edge is not overwritten.
func (g *Graph) AddEdge(u, v corpus.Key, weight float64) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfEdge, u)
	}
	if weight < 0 {
		return fmt.Errorf("edge weight must be non-negative, got %g", weight)
	}
	for _, n := range []corpus.Key{u, v} {
		if !g.HasNode(n) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, n)
		}
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("%w: (%q, %q)", ErrDuplicateEdge, u, v)
	}
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	return nil
}

// HasEdge reports whether an edge connects the unordered pair (u, v).
func (g *Graph) HasEdge(u, v corpus.Key) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// DelEdge removes the edge between u and v.
func (g *Graph) DelEdge(u, v corpus.Key) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("%w: (%q, %q)", ErrMissingEdge, u, v)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	return nil
}

// EdgeWeight returns the weight of the edge between u and v, or 0 when no
// such edge exists.
func (g *Graph) EdgeWeight(u, v corpus.Key) float64 {
	return g.adjacency[u][v]
}

// Neighbors returns the nodes adjacent to n. Order is not specified.
func (g *Graph) Neighbors(n corpus.Key) []corpus.Key {
	neighbors := g.adjacency[n]
	out := make([]corpus.Key, 0, len(neighbors))
	for k := range neighbors {
		out = append(out, k)
	}
	return out
}

// Edges returns every undirected edge exactly once. Edges are listed in
// node insertion order of their first endpoint.
func (g *Graph) Edges() []Edge {
	seen := make(map[corpus.Key]struct{}, len(g.order))
	var out []Edge
	for _, u := range g.order {
		for v, w := range g.adjacency[u] {
			if _, done := seen[v]; done {
				continue
			}
			out = append(out, Edge{U: u, V: v, Weight: w})
		}
		seen[u] = struct{}{}
	}
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.adjacency {
		total += len(neighbors)
	}
	return total / 2
}
