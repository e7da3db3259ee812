package routeoptimizer

import (
	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

// weights is one privacyLevel's scoring weight tuple, per spec §4.4.
type weights struct {
	privacy, output, fee, time float64
}

func weightsFor(level types.PrivacyLevel) weights {
	switch level {
	case types.PrivacyEnhanced:
		return weights{privacy: 0.40, output: 0.30, fee: 0.24, time: 0.06}
	case types.PrivacyMaximum:
		return weights{privacy: 0.60, output: 0.20, fee: 0.16, time: 0.04}
	default: // Standard
		return weights{privacy: 0.20, output: 0.40, fee: 0.32, time: 0.08}
	}
}

// privacyScore computes a route's privacy score, per spec §4.4: start at
// 100; for each hop, deduct 15 per endpoint not in the privacy-chain set,
// and deduct 20 if the hop's mechanism is Bridge; floor at 0.
func privacyScore(hops []types.RouteHop) float64 {
	score := 100.0
	for _, h := range hops {
		if !common.IsPrivacyChain(h.FromChain) {
			score -= 15
		}
		if !common.IsPrivacyChain(h.ToChain) {
			score -= 15
		}
		if h.Mechanism == types.MechanismBridge {
			score -= 20
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// scoreRoute fills in r's PrivacyScore and Score fields given the input
// amount and the intent's privacy level, per spec §4.4's four sub-scores
// (output/fee/time/privacy) and weighted sum.
func scoreRoute(r types.Route, inputAmount common.Amount, level types.PrivacyLevel) types.Route {
	r.PrivacyScore = privacyScore(r.Hops)

	outputScore := amountRatio(r.EstimatedOutput, inputAmount)
	feeScore := 1 - amountRatio(r.EstimatedFees.Total, inputAmount)
	timeScore := 1 - float64(r.EstimatedTime)/3600
	if timeScore < 0 {
		timeScore = 0
	}
	privScore := r.PrivacyScore / 100

	w := weightsFor(level)
	r.Score = w.privacy*privScore + w.output*outputScore + w.fee*feeScore + w.time*timeScore

	return r
}
