package htlc

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

func newTestRegistry() (*adapter.Registry, *testchain.Adapter, *testchain.Adapter) {
	reg := adapter.NewRegistry()
	src := testchain.New(common.ChainZcash)
	dst := testchain.New(common.ChainFhenix)
	reg.Register(common.ChainZcash, src)
	reg.Register(common.ChainFhenix, dst)
	return reg, src, dst
}

func newTestIntentAndSolver() (*types.SwapIntent, *types.Solver) {
	intent := &types.SwapIntent{
		ID:     "intent_htlc_1",
		UserID: "user-1",
		Addresses: types.UserAddresses{
			common.ChainZcash:  "zcash-user-addr",
			common.ChainFhenix: "fhenix-user-addr",
		},
		Source: types.SwapSide{
			Chain:  common.ChainZcash,
			Asset:  common.Asset{Symbol: "ZEC", Decimals: 8, Chain: common.ChainZcash},
			Amount: common.NewAmount(big.NewInt(1_00000000), 8),
		},
		Destination: types.DestinationSide{
			Chain:     common.ChainFhenix,
			Asset:     common.Asset{Symbol: "fUSD", Decimals: 6, Chain: common.ChainFhenix},
			MinAmount: common.NewAmount(big.NewInt(100_000000), 6),
		},
		MaxSlippage:       0.02,
		DeadlineUnixMilli: time.Now().Add(time.Hour).UnixMilli(),
		PrivacyLevel:      types.PrivacyStandard,
	}
	solver := &types.Solver{
		ID: "solver-1",
		Addresses: map[common.Chain]string{
			common.ChainZcash:  "zcash-solver-addr",
			common.ChainFhenix: "fhenix-solver-addr",
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

func TestInitiate_HappyPathReachesCompleted(t *testing.T) {
	reg, _, _ := newTestRegistry()
	c := NewCoordinator(reg, fastRetry())

	intent, solver := newTestIntentAndSolver()
	destAmount := common.NewAmount(big.NewInt(95_000000), 6)

	state, record, err := c.Initiate(context.Background(), intent, solver, destAmount)
	require.NoError(t, err)
	require.Equal(t, types.AtomicSwapCompleted, state.Status)
	require.Equal(t, types.HTLCLocked, state.SourceHTLC.State)
	require.Equal(t, types.HTLCClaimed, state.DestHTLC.State)
	require.NotEmpty(t, state.SourceHTLC.TxHash)
	require.NotEmpty(t, state.DestHTLC.TxHash)
	require.NotEmpty(t, state.DestHTLC.ClaimTxHash)

	for _, step := range record.Steps {
		require.Equal(t, StepCompleted, step.Status, "step %s should be completed", step.Name)
	}

	// The swap's hashlock must be identical on both legs, per spec §8
	// property 1 (cross-chain atomicity).
	require.Equal(t, state.SourceHTLC.Hashlock, state.DestHTLC.Hashlock)

	// sourceTimelock must exceed destTimelock (spec §4.5 invariant).
	require.Greater(t, state.SourceHTLC.Timelock, state.DestHTLC.Timelock)
}

func TestInitiate_SourceLockFailurePropagatesAndMarksStepFailed(t *testing.T) {
	reg, src, _ := newTestRegistry()
	src.FailCreate(common.NewError(common.KindTransactionBuildFailed, "rpc unreachable"))

	c := NewCoordinator(reg, fastRetry())
	intent, solver := newTestIntentAndSolver()
	destAmount := common.NewAmount(big.NewInt(95_000000), 6)

	state, record, err := c.Initiate(context.Background(), intent, solver, destAmount)
	require.Error(t, err)
	require.Equal(t, types.AtomicSwapFailed, state.Status)

	var lockStep *ExecutionStep
	for i := range record.Steps {
		if record.Steps[i].Name == "LockingSource" {
			lockStep = &record.Steps[i]
		}
	}
	require.NotNil(t, lockStep)
	require.Equal(t, StepFailed, lockStep.Status)
	require.Error(t, lockStep.Err)
}

func TestInitiate_UnregisteredChainFailsFast(t *testing.T) {
	reg := adapter.NewRegistry() // no adapters registered
	c := NewCoordinator(reg, fastRetry())

	intent, solver := newTestIntentAndSolver()
	_, _, err := c.Initiate(context.Background(), intent, solver, common.ZeroAmount(6))
	require.Error(t, err)
	kind, ok := common.KindOf(err)
	require.True(t, ok)
	require.Equal(t, common.KindAdapterNotFound, kind)
}
