package htlc

import (
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

// RecoveryAction is what an interrupted standard atomic swap should do
// next, decided purely from its recorded state and the current time -
// mirroring the teacher's ProtocolExited/tryClaim/tryReclaimMonero
// fallback chain (protocol/bob/swap_state.go), but expressed as a pure
// function rather than a method with side effects, so the Refund Manager
// (§4.8) can call it without owning a swap's full coordinator state.
type RecoveryAction string

const (
	// ActionNone means the swap is already in a terminal state; nothing
	// to recover.
	ActionNone RecoveryAction = "none"
	// ActionClaimDest means the user should still be able to claim the
	// destination HTLC by revealing destSecret/secret; its timelock has
	// not expired.
	ActionClaimDest RecoveryAction = "claim_dest"
	// ActionRefundDest means the destination HTLC's timelock has passed
	// unclaimed; the solver should refund it.
	ActionRefundDest RecoveryAction = "refund_dest"
	// ActionClaimSource means the secret has been revealed on the
	// destination chain and the solver should claim the source HTLC
	// before its timelock expires.
	ActionClaimSource RecoveryAction = "claim_source"
	// ActionRefundSource means the source HTLC's timelock has passed
	// unclaimed; the user should refund it.
	ActionRefundSource RecoveryAction = "refund_source"
	// ActionWait means no HTLC has expired yet and no action is
	// currently due.
	ActionWait RecoveryAction = "wait"
)

// DecideRecovery inspects an AtomicSwapState as of now and returns the
// single next recovery action, per spec §4.5's "leaves locked funds
// recoverable via timelock expiry" failure-handling clause and the
// sourceTimelock > destTimelock invariant that guarantees the user always
// has a window to claim the destination before the solver's source claim
// window closes.
func DecideRecovery(state *types.AtomicSwapState, now time.Time) RecoveryAction {
	if state.Status == types.AtomicSwapCompleted || state.Status == types.AtomicSwapRefunded {
		return ActionNone
	}

	nowUnix := now.Unix()

	if state.DestHTLC.State == types.HTLCLocked {
		if nowUnix >= state.DestHTLC.Timelock {
			return ActionRefundDest
		}
		return ActionClaimDest
	}

	if state.DestHTLC.State == types.HTLCClaimed && state.SourceHTLC.State == types.HTLCLocked {
		if nowUnix >= state.SourceHTLC.Timelock {
			return ActionRefundSource
		}
		return ActionClaimSource
	}

	if state.SourceHTLC.State == types.HTLCLocked && nowUnix >= state.SourceHTLC.Timelock {
		return ActionRefundSource
	}

	return ActionWait
}
