package types

import "github.com/Leihyn/omniswap-sdk-sub001/common"

// SolverStats summarizes a solver's historical performance. Route scoring
// (package routeoptimizer) does not read it.
type SolverStats struct {
	TotalSwaps   int
	SuccessRate  float64
	AverageTime  float64 // seconds
}

// Solver is an actor that fulfills intents by providing destination-chain
// liquidity and recovering source-chain funds, per spec §3/Glossary.
type Solver struct {
	ID        string
	Addresses map[common.Chain]string

	// Inventory maps an asset symbol to the amount the solver has
	// available to fill with, per spec §4.3's match() check.
	Inventory map[string]common.Amount

	Stats        SolverStats
	StakeAmount  common.Amount
	FeeRate      float64
}

// CanFill reports whether the solver's inventory for assetSymbol covers
// minAmount, the check spec §4.3's match() performs.
func (s *Solver) CanFill(assetSymbol string, minAmount common.Amount) bool {
	have, ok := s.Inventory[assetSymbol]
	if !ok {
		return false
	}
	return have.Cmp(minAmount) >= 0
}
