package common

import (
	"fmt"
	"regexp"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	minaAddressPattern = regexp.MustCompile(`^B62[1-9A-HJ-NP-Za-km-z]{52}$`)
	osmosisBech32      = regexp.MustCompile(`^osmo1[0-9a-z]{20,}$`)
)

// ValidateAddress checks an address string against the per-chain wire
// rules in spec §6. It never touches the network; it only validates
// shape, the same boundary check the teacher's rpc server performs with
// mcrypto.ValidateAddress before accepting a Monero address from a peer.
func ValidateAddress(chain Chain, address string) error {
	switch chain {
	case ChainZcash:
		if hasAnyPrefix(address, "t1", "t3", "zs") {
			return nil
		}
		return fmt.Errorf("invalid zcash address %q: must start with t1, t3, or zs", address)
	case ChainOsmosis:
		if osmosisBech32.MatchString(address) {
			return nil
		}
		return fmt.Errorf("invalid osmosis address %q: must start with osmo1", address)
	case ChainFhenix, ChainAztec:
		if ethcommon.IsHexAddress(address) {
			return nil
		}
		return fmt.Errorf("invalid %s address %q: must match ^0x[a-fA-F0-9]{40}$", chain, address)
	case ChainMina:
		if minaAddressPattern.MatchString(address) {
			return nil
		}
		return fmt.Errorf("invalid mina address %q: must start with B62", address)
	case ChainMiden:
		// Miden's address format is not fixed by the spec's wire rules;
		// accept any non-empty value.
		if address == "" {
			return fmt.Errorf("invalid miden address: empty")
		}
		return nil
	default:
		return fmt.Errorf("unknown chain %q", chain)
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}
