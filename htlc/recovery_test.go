package htlc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

func baseSwapState() *types.AtomicSwapState {
	return &types.AtomicSwapState{
		SwapID: "swap_1",
		Status: types.AtomicSwapPending,
	}
}

func TestDecideRecovery_TerminalStatesNeedNoAction(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.Status = types.AtomicSwapCompleted
	require.Equal(t, ActionNone, DecideRecovery(s, now))

	s.Status = types.AtomicSwapRefunded
	require.Equal(t, ActionNone, DecideRecovery(s, now))
}

func TestDecideRecovery_DestLockedBeforeExpiryMeansClaimDest(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.DestHTLC.State = types.HTLCLocked
	s.DestHTLC.Timelock = now.Add(time.Hour).Unix()

	require.Equal(t, ActionClaimDest, DecideRecovery(s, now))
}

func TestDecideRecovery_DestLockedPastExpiryMeansRefundDest(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.DestHTLC.State = types.HTLCLocked
	s.DestHTLC.Timelock = now.Add(-time.Minute).Unix()

	require.Equal(t, ActionRefundDest, DecideRecovery(s, now))
}

func TestDecideRecovery_DestClaimedSourceLockedBeforeExpiryMeansClaimSource(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.DestHTLC.State = types.HTLCClaimed
	s.SourceHTLC.State = types.HTLCLocked
	s.SourceHTLC.Timelock = now.Add(time.Hour).Unix()

	require.Equal(t, ActionClaimSource, DecideRecovery(s, now))
}

func TestDecideRecovery_DestClaimedSourceLockedPastExpiryMeansRefundSource(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.DestHTLC.State = types.HTLCClaimed
	s.SourceHTLC.State = types.HTLCLocked
	s.SourceHTLC.Timelock = now.Add(-time.Minute).Unix()

	require.Equal(t, ActionRefundSource, DecideRecovery(s, now))
}

func TestDecideRecovery_OnlySourceLockedPastExpiryMeansRefundSource(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.SourceHTLC.State = types.HTLCLocked
	s.SourceHTLC.Timelock = now.Add(-time.Minute).Unix()

	require.Equal(t, ActionRefundSource, DecideRecovery(s, now))
}

func TestDecideRecovery_NothingPendingMeansWait(t *testing.T) {
	now := time.Now()
	s := baseSwapState()
	s.SourceHTLC.State = types.HTLCPending
	s.DestHTLC.State = types.HTLCPending

	require.Equal(t, ActionWait, DecideRecovery(s, now))
}
