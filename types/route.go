package types

import "github.com/Leihyn/omniswap-sdk-sub001/common"

// Mechanism is how a RouteHop actually moves value between two nodes in
// the liquidity graph, per spec §4.4.
type Mechanism string

const (
	MechanismAtomicSwap   Mechanism = "atomic_swap"
	MechanismAmmSwap      Mechanism = "amm_swap"
	MechanismIbcTransfer  Mechanism = "ibc_transfer"
	MechanismBridge       Mechanism = "bridge"
	MechanismSolverFill   Mechanism = "solver_fill"
)

// RouteHop is one edge traversal in a candidate route.
type RouteHop struct {
	FromChain common.Chain
	ToChain   common.Chain
	FromAsset common.Asset
	ToAsset   common.Asset
	Mechanism Mechanism
	Venue     string

	EstimatedOutput common.Amount
	Fee             common.Amount
}

// Fees breaks a route's aggregated fees down by who collects them, per
// spec §3/§4.4.
type Fees struct {
	Protocol      common.Amount
	NetworkPerChain map[common.Chain]common.Amount
	Solver        common.Amount
	Total         common.Amount
}

// Route is a scored, simulated candidate path from a SwapIntent's source
// to its destination.
type Route struct {
	ID   string
	Hops []RouteHop

	EstimatedOutput common.Amount
	EstimatedFees   Fees
	EstimatedTime   int // seconds

	SlippageRisk   float64
	LiquidityDepth common.Amount
	PriceImpact    float64
	PrivacyScore   float64 // 0-100

	Score float64
}

// IsEmpty reports whether the route has no hops.
func (r *Route) IsEmpty() bool {
	return len(r.Hops) == 0
}
