package graph

// RemoveUnreachable deletes, in place, every node whose incident edge
// weights sum to zero. Such nodes have no measurable connection to the rest
// of the graph and would receive meaningless ranking scores.
func RemoveUnreachable(g *Graph) {
	for _, n := range g.Nodes() {
		total := 0.0
		for _, other := range g.Neighbors(n) {
			total += g.EdgeWeight(n, other)
		}
		if total == 0 {
			g.DelNode(n)
		}
	}
}
