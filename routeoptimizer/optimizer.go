package routeoptimizer

import (
	"context"
	"sort"
	"time"

	logging "github.com/ipfs/go-log"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

var log = logging.Logger("routeoptimizer")

const (
	kPaths          = 5
	topRoutes       = 3
	privateScoreMin = 70
)

// Optimizer finds, simulates, and scores candidate routes for a
// SwapIntent over the liquidity graph described in spec §4.4.
type Optimizer struct {
	now func() time.Time
}

// New returns an Optimizer using time.Now for route id timestamps.
func New() *Optimizer {
	return &Optimizer{now: time.Now}
}

// FindRoutes builds the liquidity graph for intent's source/destination,
// enumerates the 5 lowest-fee-rate simple paths, simulates each, scores
// each against intent's privacy level, and returns the top 3 by score
// descending, per spec §4.4.
//
// The source repeatedly calls this same underlying invocation `findRoutes`
// in some places and `getQuote` in others without a sharp distinction
// (spec §9 open question); FindQuote is kept as an alias so callers using
// either name reach the same logic.
func (o *Optimizer) FindRoutes(_ context.Context, intent *types.SwapIntent) ([]types.Route, error) {
	src := Node{Chain: intent.Source.Chain, Asset: intent.Source.Asset}
	dst := Node{Chain: intent.Destination.Chain, Asset: intent.Destination.Asset}

	g := BuildGraph(src, dst)
	paths := kShortestSimplePaths(g, src, dst, kPaths)
	if len(paths) == 0 {
		return nil, common.NewError(common.KindNoRouteFound, "no route found from %s/%s to %s/%s",
			src.Chain, src.Asset.Symbol, dst.Chain, dst.Asset.Symbol)
	}

	routes := make([]types.Route, 0, len(paths))
	for _, p := range paths {
		routeID, err := common.GenerateRouteID(o.now().UnixMilli())
		if err != nil {
			return nil, err
		}

		r := simulate(p, routeID, intent.Source.Amount)
		r = scoreRoute(r, intent.Source.Amount, intent.PrivacyLevel)
		routes = append(routes, r)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Score > routes[j].Score
	})

	if len(routes) > topRoutes {
		routes = routes[:topRoutes]
	}

	log.Debugf("found %d candidate routes for %s->%s, top score=%.4f",
		len(routes), src.Chain, dst.Chain, routes[0].Score)

	return routes, nil
}

// FindQuote is an alias for FindRoutes; see its doc comment.
func (o *Optimizer) FindQuote(ctx context.Context, intent *types.SwapIntent) ([]types.Route, error) {
	return o.FindRoutes(ctx, intent)
}

// FindPrivateRoute filters FindRoutes' result to routes with
// privacyScore >= 70, per spec §4.4; if none qualify it returns a
// KindNoPrivateRoute error.
func (o *Optimizer) FindPrivateRoute(ctx context.Context, intent *types.SwapIntent) (types.Route, error) {
	routes, err := o.FindRoutes(ctx, intent)
	if err != nil {
		return types.Route{}, err
	}

	for _, r := range routes {
		if r.PrivacyScore >= privateScoreMin {
			return r, nil
		}
	}

	return types.Route{}, common.NewError(common.KindNoPrivateRoute,
		"no candidate route meets the minimum privacy score of %d", privateScoreMin)
}
