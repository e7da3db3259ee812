package htlc

import (
	"context"
	"sync"
	"time"

	"github.com/fatih/color" //nolint:misspell
	logging "github.com/ipfs/go-log"

	"github.com/Leihyn/omniswap-sdk-sub001/adapter"
	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/secret"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/timelock"
	"github.com/Leihyn/omniswap-sdk-sub001/resilience"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

var log = logging.Logger("htlc")

// stepNames is the fixed step sequence of spec §4.5.
var stepNames = []string{
	"Initializing",
	"LockingSource",
	"ConfirmingLock",
	"LockingDest",
	"ConfirmingDest",
	"ClaimingDest",
	"Completing",
}

// destTimelockSafetyMarginNum/Den halves sourceTimelock's remaining
// duration to derive destTimelock, per spec §4.5 step 1.
const (
	destTimelockSafetyMarginNum = 1
	destTimelockSafetyMarginDen = 2
)

// Coordinator drives standard (non-Privacy-Hub) atomic swaps: one
// sourceHTLC and one destHTLC sharing a single hashlock, per spec §4.5.
// It owns no long-lived goroutines; Initiate runs a swap to completion (or
// failure) on the caller's goroutine, suspending only at adapter calls and
// sleeps, per spec §5.
type Coordinator struct {
	registry *adapter.Registry
	retry    resilience.RetryOptions
	now      func() time.Time

	mu     sync.Mutex
	active map[string]*types.AtomicSwapState
}

// NewCoordinator returns a Coordinator that looks up chain adapters from
// registry and retries transient adapter failures per retry (zero value
// selects resilience.StandardPreset()).
func NewCoordinator(registry *adapter.Registry, retry resilience.RetryOptions) *Coordinator {
	if retry.MaxAttempts == 0 {
		retry = resilience.StandardPreset()
	}
	return &Coordinator{
		registry: registry,
		retry:    retry,
		now:      time.Now,
		active:   make(map[string]*types.AtomicSwapState),
	}
}

// Get returns the current state of a swap previously started via
// Initiate, if the coordinator still has it in memory.
func (c *Coordinator) Get(swapID string) (types.AtomicSwapState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.active[swapID]
	if !ok {
		return types.AtomicSwapState{}, false
	}
	return *s, true
}

// Initiate runs intent's standard atomic swap to completion against
// solver, per spec §4.5. destAmount is the amount the coordinator locks
// into the destination HTLC; it is supplied by the caller (the route the
// intent pool already matched against) rather than recomputed here, since
// quoting is the route optimizer's responsibility, not the coordinator's.
func (c *Coordinator) Initiate(
	ctx context.Context,
	intent *types.SwapIntent,
	solver *types.Solver,
	destAmount common.Amount,
) (*types.AtomicSwapState, *ExecutionRecord, error) {
	srcAdapter, err := c.registry.Get(intent.Source.Chain)
	if err != nil {
		return nil, nil, err
	}
	dstAdapter, err := c.registry.Get(intent.Destination.Chain)
	if err != nil {
		return nil, nil, err
	}

	userSourceAddr := intent.Addresses[intent.Source.Chain]
	userDestAddr := intent.Addresses[intent.Destination.Chain]
	solverSourceAddr := solver.Addresses[intent.Source.Chain]
	solverDestAddr := solver.Addresses[intent.Destination.Chain]

	record := newExecutionRecord(intent.ID, stepNames)
	state, err := c.initialize(record, intent)
	if err != nil {
		return nil, record, err
	}

	c.track(state)
	defer c.untrack(state.SwapID)

	if err := c.lockSource(ctx, record, state, srcAdapter, userSourceAddr, solverSourceAddr); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.confirmLock(ctx, record, "ConfirmingLock", srcAdapter, state.SourceHTLC.TxHash); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.lockDest(ctx, record, state, dstAdapter, solverDestAddr, userDestAddr, destAmount); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.confirmLock(ctx, record, "ConfirmingDest", dstAdapter, state.DestHTLC.TxHash); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.claimDest(ctx, record, state, dstAdapter); err != nil {
		return c.fail(state, record, err)
	}

	// Completing: the solver observes the revealed secret on-chain and
	// claims the source HTLC out-of-band. The coordinator has no adapter
	// call of its own here; it only records that this step is the
	// expected next external action.
	record.begin("Completing", c.now())
	record.finish("Completing", c.now(), nil)

	state.Status = types.AtomicSwapCompleted
	banner := color.New(color.FgGreen, color.Bold).Sprintf("swap completed: id=%s", state.SwapID)
	log.Info(banner)

	return state, record, nil
}

func (c *Coordinator) initialize(record *ExecutionRecord, intent *types.SwapIntent) (*types.AtomicSwapState, error) {
	now := c.now()
	record.begin("Initializing", now)

	s, err := secret.Generate()
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "generate secret", err)
	}
	hashlock := secret.Hash(s)

	sourceExpiry, err := timelock.Sample(now, timelock.SourceLeg)
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "sample source timelock", err)
	}

	remaining := sourceExpiry.Sub(now)
	destOffset := remaining * destTimelockSafetyMarginNum / destTimelockSafetyMarginDen
	destExpiry := now.Add(destOffset)

	state := &types.AtomicSwapState{
		SwapID:   intent.ID,
		Secret:   s,
		Hashlock: hashlock,
		Status:   types.AtomicSwapPending,
		SourceHTLC: types.HTLCStatus{
			State:    types.HTLCPending,
			Amount:   intent.Source.Amount,
			Hashlock: hashlock,
			Timelock: sourceExpiry.Unix(),
		},
		DestHTLC: types.HTLCStatus{
			State:    types.HTLCPending,
			Hashlock: hashlock,
			Timelock: destExpiry.Unix(),
		},
	}

	record.finish("Initializing", c.now(), nil)
	return state, nil
}

func (c *Coordinator) lockSource(
	ctx context.Context,
	record *ExecutionRecord,
	state *types.AtomicSwapState,
	a adapter.ChainAdapter,
	sender, receiver string,
) error {
	record.begin("LockingSource", c.now())

	params := adapter.HTLCParams{
		Sender:   sender,
		Receiver: receiver,
		Amount:   state.SourceHTLC.Amount,
		Hashlock: state.Hashlock,
		Timelock: state.SourceHTLC.Timelock,
	}

	txHash, err := c.createAndBroadcastHTLC(ctx, a, params)
	if err != nil {
		return record.failAndWrap("LockingSource", c.now(), common.KindTransactionBuildFailed, "lock source HTLC", err)
	}

	state.SourceHTLC.ID = txHash
	state.SourceHTLC.TxHash = txHash
	state.SourceHTLC.State = types.HTLCLocked
	record.TxHashes["LockingSource"] = txHash
	record.finish("LockingSource", c.now(), nil)
	return nil
}

func (c *Coordinator) lockDest(
	ctx context.Context,
	record *ExecutionRecord,
	state *types.AtomicSwapState,
	a adapter.ChainAdapter,
	sender, receiver string,
	amount common.Amount,
) error {
	record.begin("LockingDest", c.now())

	params := adapter.HTLCParams{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Hashlock: state.Hashlock,
		Timelock: state.DestHTLC.Timelock,
	}

	txHash, err := c.createAndBroadcastHTLC(ctx, a, params)
	if err != nil {
		return record.failAndWrap("LockingDest", c.now(), common.KindTransactionBuildFailed, "lock destination HTLC", err)
	}

	state.DestHTLC.ID = txHash
	state.DestHTLC.Amount = amount
	state.DestHTLC.TxHash = txHash
	state.DestHTLC.State = types.HTLCLocked
	record.TxHashes["LockingDest"] = txHash
	record.finish("LockingDest", c.now(), nil)
	return nil
}

func (c *Coordinator) createAndBroadcastHTLC(ctx context.Context, a adapter.ChainAdapter, params adapter.HTLCParams) (string, error) {
	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		tx, err := a.CreateHTLC(ctx, params)
		if err != nil {
			return err
		}
		unsigned = tx
		return nil
	})
	if res.Err != nil {
		return "", res.Err
	}

	signed, err := a.SignTransaction(ctx, unsigned, nil)
	if err != nil {
		return "", err
	}

	var txHash string
	res = resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		h, err := a.BroadcastTransaction(ctx, signed)
		if err != nil {
			return err
		}
		txHash = h
		return nil
	})
	if res.Err != nil {
		return "", res.Err
	}
	return txHash, nil
}

func (c *Coordinator) confirmLock(ctx context.Context, record *ExecutionRecord, stepName string, a adapter.ChainAdapter, txHash string) error {
	record.begin(stepName, c.now())

	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		return a.WaitForConfirmation(ctx, txHash)
	})
	if res.Err != nil {
		return record.failAndWrap(stepName, c.now(), common.KindNetworkError, "confirm lock", res.Err)
	}

	record.finish(stepName, c.now(), nil)
	return nil
}

func (c *Coordinator) claimDest(ctx context.Context, record *ExecutionRecord, state *types.AtomicSwapState, a adapter.ChainAdapter) error {
	record.begin("ClaimingDest", c.now())

	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		tx, err := a.ClaimHTLC(ctx, state.DestHTLC.ID, state.Secret.Bytes())
		if err != nil {
			return err
		}
		unsigned = tx
		return nil
	})
	if res.Err != nil {
		return record.failAndWrap("ClaimingDest", c.now(), common.KindTransactionBuildFailed, "claim destination HTLC", res.Err)
	}

	signed, err := a.SignTransaction(ctx, unsigned, nil)
	if err != nil {
		return record.failAndWrap("ClaimingDest", c.now(), common.KindTransactionBuildFailed, "sign claim tx", err)
	}

	txHash, err := a.BroadcastTransaction(ctx, signed)
	if err != nil {
		return record.failAndWrap("ClaimingDest", c.now(), common.KindNetworkError, "broadcast claim tx", err)
	}

	state.DestHTLC.ClaimTxHash = txHash
	state.DestHTLC.State = types.HTLCClaimed
	record.TxHashes["ClaimingDest"] = txHash
	record.finish("ClaimingDest", c.now(), nil)
	return nil
}

func (c *Coordinator) fail(state *types.AtomicSwapState, record *ExecutionRecord, err error) (*types.AtomicSwapState, *ExecutionRecord, error) {
	state.Status = types.AtomicSwapFailed
	banner := color.New(color.FgRed, color.Bold).Sprintf("swap failed: id=%s err=%s", state.SwapID, err)
	log.Warn(banner)
	return state, record, err
}

func (c *Coordinator) track(state *types.AtomicSwapState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active[state.SwapID] = state
}

func (c *Coordinator) untrack(swapID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, swapID)
}

// failAndWrap marks step failed in the record and wraps err with kind,
// returning the wrapped error for the caller to propagate.
func (r *ExecutionRecord) failAndWrap(step string, now time.Time, kind common.Kind, msg string, err error) error {
	wrapped := common.Wrap(kind, err, msg).WithContext("step", step)
	r.finish(step, now, wrapped)
	return wrapped
}
