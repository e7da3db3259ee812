package common

// Asset describes a unit of value on a single chain: its ticker, display
// name, decimal precision, and (for non-native assets) the contract
// address or denom identifying it on-chain.
type Asset struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Chain    Chain  `json:"chain"`

	// Contract is the contract address (EVM-style chains) or IBC denom
	// (Cosmos chains) identifying a non-native asset. Empty for the
	// chain's native asset.
	Contract string `json:"contract,omitempty"`
}

// IsNative reports whether a is the chain's native asset (no contract/denom).
func (a Asset) IsNative() bool {
	return a.Contract == ""
}
