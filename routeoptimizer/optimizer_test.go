package routeoptimizer

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

func testIntent(privacy types.PrivacyLevel) *types.SwapIntent {
	return &types.SwapIntent{
		ID:     "intent_route_test",
		UserID: "user-1",
		Source: types.SwapSide{
			Chain:  common.ChainZcash,
			Asset:  common.Asset{Symbol: "ZEC", Decimals: 8, Chain: common.ChainZcash},
			Amount: common.NewAmount(big.NewInt(1_00000000), 8),
		},
		Destination: types.DestinationSide{
			Chain:     common.ChainFhenix,
			Asset:     common.Asset{Symbol: "fUSD", Decimals: 6, Chain: common.ChainFhenix},
			MinAmount: common.NewAmount(big.NewInt(100_000000), 6),
		},
		MaxSlippage:       0.02,
		DeadlineUnixMilli: time.Now().Add(time.Hour).UnixMilli(),
		PrivacyLevel:      privacy,
	}
}

func TestFindRoutes_ReturnsTopThreeByScoreDescending(t *testing.T) {
	o := New()
	routes, err := o.FindRoutes(context.Background(), testIntent(types.PrivacyStandard))
	require.NoError(t, err)
	require.NotEmpty(t, routes)
	require.LessOrEqual(t, len(routes), topRoutes)

	for i := 1; i < len(routes); i++ {
		require.GreaterOrEqual(t, routes[i-1].Score, routes[i].Score)
	}
}

func TestFindRoutes_DirectAndHubPathsBothAppear(t *testing.T) {
	o := New()
	routes, err := o.FindRoutes(context.Background(), testIntent(types.PrivacyStandard))
	require.NoError(t, err)

	var sawDirect, sawHub bool
	for _, r := range routes {
		switch len(r.Hops) {
		case 1:
			sawDirect = true
		case 2:
			sawHub = true
		}
	}
	require.True(t, sawDirect, "expected a direct single-hop route among candidates")
	require.True(t, sawHub, "expected a hub-routed two-hop route among candidates")
}

func TestFindQuote_IsAliasForFindRoutes(t *testing.T) {
	o := New()
	intent := testIntent(types.PrivacyStandard)

	a, err := o.FindRoutes(context.Background(), intent)
	require.NoError(t, err)
	b, err := o.FindQuote(context.Background(), intent)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		require.InDelta(t, a[i].Score, b[i].Score, 1e-9)
	}
}

func TestFindPrivateRoute_PrefersPrivacyChains(t *testing.T) {
	o := New()
	r, err := o.FindPrivateRoute(context.Background(), testIntent(types.PrivacyMaximum))
	require.NoError(t, err)
	require.GreaterOrEqual(t, r.PrivacyScore, float64(privateScoreMin))
}

func TestPrivacyScore_BridgedNonPrivacyHopFallsBelowThreshold(t *testing.T) {
	hops := []types.RouteHop{{
		FromChain: common.ChainFhenix,
		ToChain:   common.ChainOsmosis,
		Mechanism: types.MechanismBridge,
	}}
	require.Less(t, privacyScore(hops), float64(privateScoreMin))
}

func TestScoreRoute_PrivacyWeightDominatesAtMaximumLevel(t *testing.T) {
	input := common.NewAmount(big.NewInt(1_00000000), 8)

	privacyHops := []types.RouteHop{{FromChain: common.ChainZcash, ToChain: common.ChainMiden, Mechanism: types.MechanismAtomicSwap}}
	bridgedHops := []types.RouteHop{{FromChain: common.ChainFhenix, ToChain: common.ChainOsmosis, Mechanism: types.MechanismBridge}}

	privacyRoute := types.Route{
		Hops:            privacyHops,
		EstimatedOutput: input,
		EstimatedFees:   types.Fees{Total: common.ZeroAmount(8)},
		EstimatedTime:   60,
	}
	bridgedRoute := types.Route{
		Hops:            bridgedHops,
		EstimatedOutput: input,
		EstimatedFees:   types.Fees{Total: common.ZeroAmount(8)},
		EstimatedTime:   60,
	}

	privacyScored := scoreRoute(privacyRoute, input, types.PrivacyMaximum)
	bridgedScored := scoreRoute(bridgedRoute, input, types.PrivacyMaximum)

	require.Greater(t, privacyScored.Score, bridgedScored.Score)
}
