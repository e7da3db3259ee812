// Package routeoptimizer builds a liquidity graph over chain/asset nodes,
// enumerates k-shortest simple paths, simulates them, and scores them
// with privacy weighting, per spec §4.4. The graph is rebuilt lazily for
// each query from the static edge rules in §4.4 rather than maintained as
// long-lived mutable state - there is no live liquidity feed to keep in
// sync with (that is the excluded public API client's job), so a fresh
// graph per call is both simpler and always consistent with the query's
// own chains/assets.
package routeoptimizer

import (
	"math/big"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

// Node is one (chain, asset) vertex in the liquidity graph.
type Node struct {
	Chain common.Chain
	Asset common.Asset
}

func (n Node) key() string {
	return string(n.Chain) + ":" + n.Asset.Symbol
}

// Edge is one liquidity path between two nodes, per spec §4.4.
type Edge struct {
	To        Node
	Mechanism types.Mechanism
	Venue     string
	FeeRate   float64 // fraction, e.g. 0.003 for 0.3%
	TimeSecs  int
	Liquidity common.Amount
}

// Graph is an adjacency list keyed by node.
type Graph struct {
	edges map[string][]Edge
	nodes map[string]Node
}

func newGraph() *Graph {
	return &Graph{
		edges: make(map[string][]Edge),
		nodes: make(map[string]Node),
	}
}

func (g *Graph) addNode(n Node) {
	g.nodes[n.key()] = n
}

func (g *Graph) addEdge(from, to Node, mechanism types.Mechanism, venue string, feeRate float64, timeSecs int, liquidity common.Amount) {
	g.addNode(from)
	g.addNode(to)
	g.edges[from.key()] = append(g.edges[from.key()], Edge{
		To:        to,
		Mechanism: mechanism,
		Venue:     venue,
		FeeRate:   feeRate,
		TimeSecs:  timeSecs,
		Liquidity: liquidity,
	})
}

func (g *Graph) neighbors(n Node) []Edge {
	return g.edges[n.key()]
}

// defaultLiquidity stands in for a live liquidity feed (owned by the
// excluded public API client / per-chain adapters in a full deployment):
// a fixed, generous multiple of typical swap sizes so the optimizer's
// liquidityDepth/slippage math has a concrete number to work with. Real
// liquidity values would come from adapter.GetBalance on pool addresses.
func defaultLiquidity(asset common.Asset) common.Amount {
	base := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(asset.Decimals)+6), nil)
	return common.NewAmount(base, asset.Decimals)
}

// BuildGraph constructs the liquidity graph for one source->destination
// query, applying the static edge rules from spec §4.4:
//   - every (src, dst) pair gets an AtomicSwap edge via "omniswap-htlc"
//     (fee 0.003, time 1200s);
//   - EVM<->EVM pairs additionally get a Bridge edge via "thorchain"
//     (fee 0.005, time 600s);
//   - Cosmos-involving pairs additionally get an IbcTransfer edge
//     (fee 0.001, time 60s);
//   - if neither endpoint is Osmosis, hub routes via Osmosis are added
//     (both legs direct AtomicSwap edges).
func BuildGraph(src, dst Node) *Graph {
	g := newGraph()
	addPairEdges(g, src, dst)

	if src.Chain != common.ChainOsmosis && dst.Chain != common.ChainOsmosis {
		hubAsset := common.Asset{Symbol: "OSMO", Decimals: 6, Chain: common.ChainOsmosis}
		hub := Node{Chain: common.ChainOsmosis, Asset: hubAsset}
		addPairEdges(g, src, hub)
		addPairEdges(g, hub, dst)
	}

	return g
}

func addPairEdges(g *Graph, from, to Node) {
	if from.key() == to.key() {
		return
	}

	g.addEdge(from, to, types.MechanismAtomicSwap, "omniswap-htlc", 0.003, 1200, defaultLiquidity(to.Asset))

	if common.IsEVMChain(from.Chain) && common.IsEVMChain(to.Chain) {
		g.addEdge(from, to, types.MechanismBridge, "thorchain", 0.005, 600, defaultLiquidity(to.Asset))
	}

	if common.IsCosmosChain(from.Chain) || common.IsCosmosChain(to.Chain) {
		g.addEdge(from, to, types.MechanismIbcTransfer, "ibc", 0.001, 60, defaultLiquidity(to.Asset))
	}
}
