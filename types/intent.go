// Package types holds the wire-level domain records shared across the
// swap core: intents, solvers, routes, and HTLC/swap state. Grouping them
// in one package (rather than scattering them across consumers) follows
// the teacher's common/types package, which plays the same role for
// Offer/Status/Hash.
package types

import (
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// PrivacyLevel selects how much correlation resistance a swap asks for,
// which in turn selects the route optimizer's scoring weights (spec §4.4).
type PrivacyLevel string

const (
	PrivacyStandard PrivacyLevel = "standard"
	PrivacyEnhanced PrivacyLevel = "enhanced"
	PrivacyMaximum  PrivacyLevel = "maximum"
)

// IntentStatus is the SwapIntent lifecycle state, per spec §3.
type IntentStatus string

const (
	IntentPending   IntentStatus = "pending"
	IntentMatched   IntentStatus = "matched"
	IntentExecuting IntentStatus = "executing"
	IntentCompleted IntentStatus = "completed"
	IntentFailed    IntentStatus = "failed"
	IntentExpired   IntentStatus = "expired"
	IntentCancelled IntentStatus = "cancelled"
)

// terminalIntentStatuses are statuses cancel() treats as already-final.
var terminalIntentStatuses = map[IntentStatus]bool{
	IntentCompleted: true,
	IntentFailed:    true,
	IntentExpired:   true,
	IntentCancelled: true,
}

// IsTerminal reports whether s is a terminal SwapIntent status.
func (s IntentStatus) IsTerminal() bool {
	return terminalIntentStatuses[s]
}

// SwapSide describes one leg of an intent: a chain, an asset on that
// chain, and an amount.
type SwapSide struct {
	Chain  common.Chain
	Asset  common.Asset
	Amount common.Amount
}

// DestinationSide is like SwapSide but carries a minimum acceptable
// amount rather than an exact one, since the destination amount is
// whatever the solver/route delivers above the user's floor.
type DestinationSide struct {
	Chain     common.Chain
	Asset     common.Asset
	MinAmount common.Amount
}

// UserAddresses maps a chain to the user's address on that chain.
type UserAddresses map[common.Chain]string

// SwapIntent is a user-declared desired cross-chain swap outcome, per
// spec §3.
type SwapIntent struct {
	ID     string
	UserID string

	Addresses UserAddresses

	Source      SwapSide
	Destination DestinationSide

	MaxSlippage   float64
	DeadlineUnixMilli int64
	PrivacyLevel  PrivacyLevel

	Status IntentStatus

	CreatedAtUnixMilli int64
	UpdatedAtUnixMilli int64
}

// Validate checks the invariants spec §3 requires at submission time:
// sourceAmount > 0, deadline > now, 0 < maxSlippage < 1, both chains set.
// nowUnixMilli is passed in explicitly so validation is deterministic and
// testable without touching the wall clock.
func (i *SwapIntent) Validate(nowUnixMilli int64) error {
	if i.Source.Chain == "" || i.Destination.Chain == "" {
		return common.NewError(common.KindInvalidIntent, "both source and destination chains must be specified")
	}
	if !i.Source.Amount.IsPositive() {
		return common.NewError(common.KindInvalidIntent, "Source amount must be positive")
	}
	if i.DeadlineUnixMilli <= nowUnixMilli {
		return common.NewError(common.KindInvalidIntent, "Deadline must be in the future")
	}
	if i.MaxSlippage <= 0 || i.MaxSlippage >= 1 {
		return common.NewError(common.KindInvalidIntent, "Slippage must be between 0 and 1")
	}
	return nil
}

// Deadline returns the intent's deadline as a time.Time.
func (i *SwapIntent) Deadline() time.Time {
	return time.UnixMilli(i.DeadlineUnixMilli)
}
