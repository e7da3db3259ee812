// Package privacyhub drives the Privacy Hub two-secret atomic swap state
// machine of spec §4.6: a distinct state machine from the standard
// Coordinator (package htlc) because it breaks on-chain correlation by
// using two independent secrets and a mixing hop through a shielded-pool
// hub chain, rather than one shared hashlock across both legs.
package privacyhub

import (
	"math/big"
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// Config recognizes the options spec §4.7 names for a Privacy Hub swap.
type Config struct {
	HubChain common.Chain // Zcash, Aztec, or Miden

	MinMixingDelay time.Duration
	MaxMixingDelay time.Duration

	UseSplitAmounts    bool
	SplitDenominations []*big.Int

	UseDecoyTransactions bool
	DecoyCount           int
}

// DefaultConfig returns the spec §4.6 defaults: Zcash hub, 30min-2h
// mixing delay, no splitting, no decoys.
func DefaultConfig() Config {
	return Config{
		HubChain:       common.ChainZcash,
		MinMixingDelay: 30 * time.Minute,
		MaxMixingDelay: 2 * time.Hour,
	}
}

// Validate checks hubChain is hub-capable and the mixing delay window and
// decoy count are sane.
func (c Config) Validate() error {
	if !common.IsHubCapable(c.HubChain) {
		return common.NewError(common.KindPrivacyHubUnavailable, "chain %s cannot serve as a privacy hub", c.HubChain)
	}
	if c.MinMixingDelay <= 0 || c.MaxMixingDelay <= 0 || c.MaxMixingDelay < c.MinMixingDelay {
		return common.NewError(common.KindPrivacyHubUnavailable, "invalid mixing delay window [%s, %s]", c.MinMixingDelay, c.MaxMixingDelay)
	}
	if c.UseDecoyTransactions && c.DecoyCount < 0 {
		return common.NewError(common.KindPrivacyHubUnavailable, "decoyCount must be >= 0")
	}
	if c.UseSplitAmounts && len(c.SplitDenominations) == 0 {
		return common.NewError(common.KindPrivacyHubUnavailable, "useSplitAmounts requires at least one split denomination")
	}
	return nil
}
