package refundmanager

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leihyn/omniswap-sdk-sub001/adapter"
	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/internal/testchain"
	"github.com/Leihyn/omniswap-sdk-sub001/resilience"
)

func fastRetry() resilience.RetryOptions {
	opts := resilience.FastPreset()
	opts.InitialDelay = time.Millisecond
	opts.MaxDelay = 5 * time.Millisecond
	return opts
}

func newManagerAndChain(t *testing.T) (*Manager, *testchain.Adapter) {
	t.Helper()
	reg := adapter.NewRegistry()
	chain := testchain.New(common.ChainZcash)
	reg.Register(common.ChainZcash, chain)

	cfg := DefaultConfig()
	cfg.CheckInterval = 10 * time.Millisecond
	m := NewManager(reg, cfg, fastRetry())
	return m, chain
}

// lockedHTLC drives testchain's create/sign/broadcast sequence to produce
// a registered, lockable htlcID the manager can later refund.
func lockedHTLC(t *testing.T, a *testchain.Adapter, timelock int64) string {
	t.Helper()
	ctx := context.Background()
	unsigned, err := a.CreateHTLC(ctx, adapter.HTLCParams{
		Sender: "sender", Receiver: "receiver",
		Amount:   common.NewAmount(big.NewInt(1000), 2),
		Timelock: timelock,
	})
	require.NoError(t, err)
	signed, err := a.SignTransaction(ctx, unsigned, nil)
	require.NoError(t, err)
	txHash, err := a.BroadcastTransaction(ctx, signed)
	require.NoError(t, err)
	return txHash
}

func TestCheckRefunds_RefundsExpiredEntryAndUpdatesStats(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	htlcID := lockedHTLC(t, chain, now.Add(-time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(-time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(1000), 2),
		RefundAddress: "zcash-refund-addr",
	})

	records := m.CheckRefunds(context.Background())
	require.Len(t, records, 1)
	require.True(t, records[0].Success)
	require.NotEmpty(t, records[0].TxHash)

	require.Empty(t, m.GetPendingRefunds())

	stats := m.GetStats()
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 0, stats.Failed)
	require.Equal(t, 1.0, stats.SuccessRate)
}

func TestCheckRefunds_SkipsEntriesNotYetEligible(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	htlcID := lockedHTLC(t, chain, now.Add(time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(1000), 2),
		RefundAddress: "zcash-refund-addr",
	})

	records := m.CheckRefunds(context.Background())
	require.Empty(t, records)
	require.Len(t, m.GetPendingRefunds(), 1)
}

func TestForceRefund_BypassesTimelockCheck(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	htlcID := lockedHTLC(t, chain, now.Add(time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(1000), 2),
		RefundAddress: "zcash-refund-addr",
	})

	rec, err := m.ForceRefund(context.Background(), htlcID)
	require.NoError(t, err)
	require.True(t, rec.Success)
	require.Empty(t, m.GetPendingRefunds())
}

func TestCheckRefunds_AdapterFailureLeavesEntryPendingWithIncrementedAttempts(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }
	chain.FailBroadcast(common.NewError(common.KindNetworkError, "rpc timeout"))

	htlcID := lockedHTLC(t, chain, now.Add(-time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(-time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(1000), 2),
		RefundAddress: "zcash-refund-addr",
	})

	records := m.CheckRefunds(context.Background())
	require.Len(t, records, 1)
	require.False(t, records[0].Success)
	require.NotEmpty(t, records[0].Error)

	pending := m.GetPendingRefunds()
	require.Len(t, pending, 1)
	require.Equal(t, 1, pending[0].Attempts)

	stats := m.GetStats()
	require.Equal(t, 1, stats.Failed)
	require.Equal(t, 0.0, stats.SuccessRate)
}

func TestExportImportState_RoundTripsPendingAndHistory(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	htlcID := lockedHTLC(t, chain, now.Add(time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(12345), 2),
		RefundAddress: "zcash-refund-addr",
	})

	exported := m.ExportState()
	require.Len(t, exported.PendingRefunds, 1)

	reg := adapter.NewRegistry()
	reg.Register(common.ChainZcash, testchain.New(common.ChainZcash))
	m2 := NewManager(reg, DefaultConfig(), fastRetry())
	require.NoError(t, m2.ImportState(exported))

	pending := m2.GetPendingRefunds()
	require.Len(t, pending, 1)
	require.Equal(t, htlcID, pending[0].HTLCID)
	require.Equal(t, 0, pending[0].Amount.Cmp(common.NewAmount(big.NewInt(12345), 2)))
}

func TestStartStopMonitoring_RunsAtLeastOnePass(t *testing.T) {
	m, chain := newManagerAndChain(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	htlcID := lockedHTLC(t, chain, now.Add(-time.Hour).Unix())
	m.Register(RefundEntry{
		SwapID: "swap_1", HTLCID: htlcID, Chain: common.ChainZcash,
		Timelock: now.Add(-time.Hour).Unix(), Amount: common.NewAmount(big.NewInt(1000), 2),
		RefundAddress: "zcash-refund-addr",
	})

	var attempted bool
	m.OnRefundAttempt(func(swapID string, chain common.Chain, success bool) {
		attempted = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartMonitoring(ctx)
	require.Eventually(t, func() bool { return attempted }, time.Second, 5*time.Millisecond)
	m.StopMonitoring()
}
