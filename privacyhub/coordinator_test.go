package privacyhub

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
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

func newTestRegistry() (*adapter.Registry, *testchain.Adapter, *testchain.Adapter, *testchain.Adapter) {
	reg := adapter.NewRegistry()
	src := testchain.New(common.ChainOsmosis)
	dst := testchain.New(common.ChainFhenix)
	hub := testchain.New(common.ChainZcash)
	reg.Register(common.ChainOsmosis, src)
	reg.Register(common.ChainFhenix, dst)
	reg.Register(common.ChainZcash, hub)
	return reg, src, dst, hub
}

func newTestIntentAndSolver() (*types.SwapIntent, *types.Solver) {
	intent := &types.SwapIntent{
		ID:     "intent_hub_1",
		UserID: "user-1",
		Addresses: types.UserAddresses{
			common.ChainOsmosis: "osmo-user-addr",
			common.ChainFhenix:  "fhenix-user-addr",
		},
		Source: types.SwapSide{
			Chain:  common.ChainOsmosis,
			Asset:  common.Asset{Symbol: "OSMO", Decimals: 6, Chain: common.ChainOsmosis},
			Amount: common.NewAmount(big.NewInt(100_000000), 6),
		},
		Destination: types.DestinationSide{
			Chain:     common.ChainFhenix,
			Asset:     common.Asset{Symbol: "fUSD", Decimals: 6, Chain: common.ChainFhenix},
			MinAmount: common.NewAmount(big.NewInt(95_000000), 6),
		},
		MaxSlippage:       0.02,
		DeadlineUnixMilli: time.Now().Add(time.Hour).UnixMilli(),
		PrivacyLevel:      types.PrivacyMaximum,
	}
	solver := &types.Solver{
		ID: "solver-1",
		Addresses: map[common.Chain]string{
			common.ChainOsmosis: "osmo-solver-addr",
			common.ChainFhenix:  "fhenix-solver-addr",
			common.ChainZcash:   "zcash-solver-addr",
		},
	}
	return intent, solver
}

func fastRetry() resilience.RetryOptions {
	opts := resilience.FastPreset()
	opts.InitialDelay = time.Millisecond
	opts.MaxDelay = 5 * time.Millisecond
	return opts
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.MinMixingDelay = time.Millisecond
	cfg.MaxMixingDelay = 2 * time.Millisecond
	return cfg
}

func TestInitiate_HappyPathReachesCompleted(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	c := NewCoordinator(reg, adapter.NewDefaultStealthAddressGenerator(), fastRetry())

	intent, solver := newTestIntentAndSolver()
	destAmount := common.NewAmount(big.NewInt(95_000000), 6)

	state, record, err := c.Initiate(context.Background(), intent, solver, fastConfig(), destAmount)
	require.NoError(t, err)
	require.Equal(t, types.HubCompleted, state.Status)
	require.Equal(t, types.HTLCClaimed, state.SourceHTLC.State)
	require.Equal(t, types.HTLCClaimed, state.DestHTLC.State)

	for _, phase := range record.Phases {
		require.Equal(t, PhaseCompleted, phase.Status, "phase %s should be completed", phase.Name)
	}

	// The whole point of the Privacy Hub protocol is that the two legs
	// use unrelated secrets, per spec §8 property 2.
	require.NotEqual(t, state.SourceHashlock, state.DestHashlock)

	flags := PrivacyFlags(state)
	require.True(t, flags.CorrelationBroken)
	require.True(t, flags.TimingDecorrelated)
	require.True(t, flags.AddressesOneTime)
	require.Equal(t, flags, state.Flags)
}

func TestInitiate_DecoyTransactionsAreScheduledAcrossMixingWindow(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	c := NewCoordinator(reg, adapter.NewDefaultStealthAddressGenerator(), fastRetry())

	intent, solver := newTestIntentAndSolver()
	destAmount := common.NewAmount(big.NewInt(95_000000), 6)

	cfg := fastConfig()
	cfg.UseDecoyTransactions = true
	cfg.DecoyCount = 3

	state, _, err := c.Initiate(context.Background(), intent, solver, cfg, destAmount)
	require.NoError(t, err)
	require.Len(t, state.DecoyTransactions, 6)

	tags := make(map[string]int)
	for _, d := range state.DecoyTransactions {
		require.Equal(t, cfg.HubChain, d.Chain)
		require.NotEmpty(t, d.CorrelationTag)
		tags[d.CorrelationTag]++
	}
	require.Len(t, tags, 3)
	for _, count := range tags {
		require.Equal(t, 2, count)
	}
}

func TestInitiate_SourceLockFailureMarksSwapFailed(t *testing.T) {
	reg, src, _, _ := newTestRegistry()
	src.FailCreate(common.NewError(common.KindTransactionBuildFailed, "rpc unreachable"))

	c := NewCoordinator(reg, adapter.NewDefaultStealthAddressGenerator(), fastRetry())
	intent, solver := newTestIntentAndSolver()
	destAmount := common.NewAmount(big.NewInt(95_000000), 6)

	state, record, err := c.Initiate(context.Background(), intent, solver, fastConfig(), destAmount)
	require.Error(t, err)
	require.Equal(t, types.HubFailed, state.Status)

	var lockPhase *ExecutionPhase
	for i := range record.Phases {
		if record.Phases[i].Name == "LockingSource" {
			lockPhase = &record.Phases[i]
		}
	}
	require.NotNil(t, lockPhase)
	require.Equal(t, PhaseFailed, lockPhase.Status)
	require.Error(t, lockPhase.Err)
}

func TestInitiate_InvalidConfigFailsFast(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	c := NewCoordinator(reg, adapter.NewDefaultStealthAddressGenerator(), fastRetry())
	intent, solver := newTestIntentAndSolver()

	cfg := fastConfig()
	cfg.HubChain = common.ChainFhenix // not hub-capable

	_, _, err := c.Initiate(context.Background(), intent, solver, cfg, common.ZeroAmount(6))
	require.Error(t, err)
	kind, ok := common.KindOf(err)
	require.True(t, ok)
	require.Equal(t, common.KindPrivacyHubUnavailable, kind)
}
