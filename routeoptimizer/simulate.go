package routeoptimizer

import (
	"math/big"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

// simulate threads inputAmount through a path's hops, applying
// fee = floor(amount * feeRate) and output = amount - fee at each hop
// (spec §4.4), and aggregates the result into a scored-but-unscored
// types.Route (Score is filled in by score.go).
func simulate(p path, routeID string, inputAmount common.Amount) types.Route {
	current := inputAmount
	hops := make([]types.RouteHop, 0, len(p.edges))

	totalTimeSecs := 0
	slippageRisk := 0.0
	var liquidityDepth common.Amount
	haveLiquidity := false

	for i, e := range p.edges {
		fromNode := p.nodes[i]
		toNode := e.To

		feeUnits := feeRateToRational(e.FeeRate)
		fee := current.MulRate(feeUnits.num, feeUnits.den)
		output := current.Sub(fee)

		hops = append(hops, types.RouteHop{
			FromChain:       fromNode.Chain,
			ToChain:         toNode.Chain,
			FromAsset:       fromNode.Asset,
			ToAsset:         toNode.Asset,
			Mechanism:       e.Mechanism,
			Venue:           e.Venue,
			EstimatedOutput: output,
			Fee:             fee,
		})

		totalTimeSecs += e.TimeSecs

		if e.Mechanism == types.MechanismAmmSwap {
			slippageRisk += 0.02
		} else {
			slippageRisk += 0.001
		}

		if !haveLiquidity || e.Liquidity.Cmp(liquidityDepth) < 0 {
			liquidityDepth = e.Liquidity
			haveLiquidity = true
		}

		current = output
	}

	totalFees := inputAmount.Sub(current)
	protocolFee := totalFees.MulRate(1, 3)
	solverFee := totalFees.MulRate(2, 3)

	priceImpact := 0.0
	if inputAmount.IsPositive() {
		priceImpact = amountRatio(totalFees, inputAmount)
	}

	return types.Route{
		ID:              routeID,
		Hops:            hops,
		EstimatedOutput: current,
		EstimatedFees: types.Fees{
			Protocol:        protocolFee,
			NetworkPerChain: map[common.Chain]common.Amount{},
			Solver:          solverFee,
			Total:           totalFees,
		},
		EstimatedTime:  totalTimeSecs,
		SlippageRisk:   slippageRisk,
		LiquidityDepth: liquidityDepth,
		PriceImpact:    priceImpact,
	}
}

type rational struct {
	num, den int64
}

// feeRateToRational converts a decimal fee rate (e.g. 0.003) into an
// integer num/den pair suitable for Amount.MulRate, which needs exact
// integer arithmetic rather than floats over bigints.
func feeRateToRational(rate float64) rational {
	const den = 1_000_000
	num := int64(rate * den)
	return rational{num: num, den: den}
}

// amountRatio returns a/b as a float64, used only for dimensionless
// scoring ratios (never for on-chain amounts).
func amountRatio(a, b common.Amount) float64 {
	af := new(big.Float).SetInt(a.Units())
	bf := new(big.Float).SetInt(b.Units())
	if bf.Sign() == 0 {
		return 0
	}
	out, _ := new(big.Float).Quo(af, bf).Float64()
	return out
}
