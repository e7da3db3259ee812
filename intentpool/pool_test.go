package intentpool

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func newTestIntent(now time.Time) *types.SwapIntent {
	return &types.SwapIntent{
		ID:     "intent_test_1",
		UserID: "user-1",
		Source: types.SwapSide{
			Chain:  common.ChainZcash,
			Asset:  common.Asset{Symbol: "ZEC", Decimals: 8, Chain: common.ChainZcash},
			Amount: common.NewAmount(big.NewInt(1_00000000), 8),
		},
		Destination: types.DestinationSide{
			Chain:     common.ChainOsmosis,
			Asset:     common.Asset{Symbol: "OSMO", Decimals: 6, Chain: common.ChainOsmosis},
			MinAmount: common.NewAmount(big.NewInt(100_000000), 6),
		},
		MaxSlippage:       0.01,
		DeadlineUnixMilli: now.Add(time.Hour).UnixMilli(),
		PrivacyLevel:      types.PrivacyStandard,
	}
}

func TestSubmit_Valid(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	err := p.Submit(intent)
	require.NoError(t, err)

	stored, ok := p.Get(intent.ID)
	require.True(t, ok)
	require.Equal(t, types.IntentPending, stored.Status)
}

func TestSubmit_RejectsZeroAmount(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	intent.Source.Amount = common.NewAmount(big.NewInt(0), 8)

	err := p.Submit(intent)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Source amount must be positive")
}

func TestSubmit_RejectsPastDeadline(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	intent.DeadlineUnixMilli = now.Add(-time.Second).UnixMilli()

	err := p.Submit(intent)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Deadline must be in the future")
}

func TestSubmit_RejectsBadSlippage(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	intent.MaxSlippage = 1.5

	err := p.Submit(intent)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Slippage must be between 0 and 1")
}

func TestCancel_IsIdempotent(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	require.NoError(t, p.Submit(intent))

	p.Cancel(intent.ID)
	stored, ok := p.Get(intent.ID)
	require.True(t, ok)
	require.Equal(t, types.IntentCancelled, stored.Status)

	// second cancel is a no-op; status remains Cancelled
	p.Cancel(intent.ID)
	stored, ok = p.Get(intent.ID)
	require.True(t, ok)
	require.Equal(t, types.IntentCancelled, stored.Status)
}

func TestCancel_UnknownIDIsNoOp(t *testing.T) {
	p := New()
	require.NotPanics(t, func() {
		p.Cancel("does-not-exist")
	})
}

func TestMatch_SufficientInventory(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	require.NoError(t, p.Submit(intent))

	solver := &types.Solver{
		ID: "solver-1",
		Inventory: map[string]common.Amount{
			"OSMO": common.NewAmount(big.NewInt(200_000000), 6),
		},
	}

	ok := p.Match(intent.ID, solver)
	require.True(t, ok)

	stored, _ := p.Get(intent.ID)
	require.Equal(t, types.IntentMatched, stored.Status)
}

func TestMatch_InsufficientInventory(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	intent := newTestIntent(now)
	require.NoError(t, p.Submit(intent))

	solver := &types.Solver{
		ID: "solver-1",
		Inventory: map[string]common.Amount{
			"OSMO": common.NewAmount(big.NewInt(1), 6),
		},
	}

	ok := p.Match(intent.ID, solver)
	require.False(t, ok)
}

func TestMatch_UnknownIDReturnsFalse(t *testing.T) {
	p := New()
	require.False(t, p.Match("nope", &types.Solver{}))
}

func TestSubmitBatch_PerItemErrors(t *testing.T) {
	now := time.Now()
	p := NewWithClock(fixedClock(now))

	good := newTestIntent(now)
	good.ID = "intent_good"

	bad := newTestIntent(now)
	bad.ID = "intent_bad"
	bad.Source.Amount = common.NewAmount(big.NewInt(0), 8)

	results := p.SubmitBatch(context.Background(), []*types.SwapIntent{good, bad})
	require.Len(t, results, 2)

	byID := map[string]SubmitBatchResult{}
	for _, r := range results {
		byID[r.IntentID] = r
	}

	require.NoError(t, byID["intent_good"].Err)
	require.Error(t, byID["intent_bad"].Err)
}
