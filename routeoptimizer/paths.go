package routeoptimizer

import "sort"

// path is a sequence of edges from a search's source node to its
// destination node, paired with the nodes actually visited (for the
// visited-set cycle guard).
type path struct {
	nodes []Node
	edges []Edge
}

func (p path) cumulativeFeeRate() float64 {
	total := 0.0
	for _, e := range p.edges {
		total += e.FeeRate
	}
	return total
}

// maxHops bounds path length; the graph this optimizer builds never
// needs more than two hops (direct, or via one Osmosis hub node), but the
// search itself is hop-count agnostic.
const maxHops = 4

// kShortestSimplePaths enumerates every simple path (no repeated nodes)
// from src to dst up to maxHops edges, then returns the k with the
// lowest cumulative fee-rate, per spec §4.4. An explicit visited set
// during the DFS prevents cycles.
func kShortestSimplePaths(g *Graph, src, dst Node, k int) []path {
	var all []path
	visited := map[string]bool{src.key(): true}

	var dfs func(current Node, nodes []Node, edges []Edge)
	dfs = func(current Node, nodes []Node, edges []Edge) {
		if current.key() == dst.key() && len(edges) > 0 {
			all = append(all, path{nodes: append([]Node(nil), nodes...), edges: append([]Edge(nil), edges...)})
			return
		}
		if len(edges) >= maxHops {
			return
		}

		for _, e := range g.neighbors(current) {
			if visited[e.To.key()] {
				continue
			}
			visited[e.To.key()] = true
			dfs(e.To, append(nodes, e.To), append(edges, e))
			visited[e.To.key()] = false
		}
	}

	dfs(src, []Node{src}, nil)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].cumulativeFeeRate() < all[j].cumulativeFeeRate()
	})

	if len(all) > k {
		all = all[:k]
	}
	return all
}
