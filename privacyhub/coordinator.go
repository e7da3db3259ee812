package privacyhub

import (
	"context"
	"sync"
	"time"

	"github.com/fatih/color" //nolint:misspell
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log"

	"github.com/Leihyn/omniswap-sdk-sub001/adapter"
	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/secret"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/timelock"
	"github.com/Leihyn/omniswap-sdk-sub001/resilience"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

var log = logging.Logger("privacyhub")

// phaseNames is the fixed phase sequence this coordinator drives, per spec
// §4.6. "HubMixing" covers both the randomDelay wait and any scheduled
// decoy transactions; the spec's own phase list and its numbered
// protocol steps disagree on whether waiting precedes or follows the hub
// withdrawal; this implementation follows the numbered protocol (wait,
// then withdraw), since it is the more precise of the two - see
// DESIGN.md.
var phaseNames = []string{
	"Initializing",
	"GeneratingStealthAddresses",
	"LockingSource",
	"ConfirmingSourceLock",
	"SolverClaimingSource",
	"HubDepositing",
	"HubMixing",
	"HubWithdrawing",
	"LockingDestination",
	"ConfirmingDestLock",
	"UserClaimingDest",
}

// Coordinator drives Privacy Hub swaps: two independently drawn secrets,
// a mixing hop through a shielded-pool hub chain, and a randomized delay
// that decorrelates source and destination timing, per spec §4.6.
type Coordinator struct {
	registry *adapter.Registry
	stealth  adapter.StealthAddressGenerator
	retry    resilience.RetryOptions
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error
	newUUID  func() string

	mu     sync.Mutex
	active map[string]*types.PrivacyHubSwapState
}

// NewCoordinator returns a Coordinator using registry for chain adapters
// and stealth for one-time address generation.
func NewCoordinator(registry *adapter.Registry, stealth adapter.StealthAddressGenerator, retry resilience.RetryOptions) *Coordinator {
	if retry.MaxAttempts == 0 {
		retry = resilience.StandardPreset()
	}
	return &Coordinator{
		registry: registry,
		stealth:  stealth,
		retry:    retry,
		now:      time.Now,
		sleep:    ctxSleep,
		newUUID:  uuid.NewString,
		active:   make(map[string]*types.PrivacyHubSwapState),
	}
}

func ctxSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the current state of a swap previously started via
// Initiate, if still tracked in memory.
func (c *Coordinator) Get(swapID string) (types.PrivacyHubSwapState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.active[swapID]
	if !ok {
		return types.PrivacyHubSwapState{}, false
	}
	return *s, true
}

// Initiate runs intent's Privacy Hub swap to completion against solver
// under cfg, per spec §4.6. destAmount is the amount locked into the
// destination HTLC, supplied by the caller for the same reason as
// htlc.Coordinator.Initiate.
func (c *Coordinator) Initiate(
	ctx context.Context,
	intent *types.SwapIntent,
	solver *types.Solver,
	cfg Config,
	destAmount common.Amount,
) (*types.PrivacyHubSwapState, *ExecutionRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	srcAdapter, err := c.registry.Get(intent.Source.Chain)
	if err != nil {
		return nil, nil, err
	}
	dstAdapter, err := c.registry.Get(intent.Destination.Chain)
	if err != nil {
		return nil, nil, err
	}
	hubAdapter, err := c.registry.Get(cfg.HubChain)
	if err != nil {
		return nil, nil, err
	}

	userSourceAddr := intent.Addresses[intent.Source.Chain]
	userDestAddr := intent.Addresses[intent.Destination.Chain]
	solverSourceAddr := solver.Addresses[intent.Source.Chain]
	solverDestAddr := solver.Addresses[intent.Destination.Chain]
	solverHubAddr := solver.Addresses[cfg.HubChain]

	record := newExecutionRecord(intent.ID, phaseNames)
	state, err := c.initialize(record, intent, cfg)
	if err != nil {
		return nil, record, err
	}

	c.track(state)
	defer c.untrack(state.SwapID)

	if err := c.generateStealthAddresses(record, state, intent.Source.Chain, intent.Destination.Chain, userSourceAddr, solverDestAddr); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.lockSource(ctx, record, state, srcAdapter, userSourceAddr, solverSourceAddr); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.confirm(ctx, record, "ConfirmingSourceLock", srcAdapter, state.SourceHTLC.TxHash); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.solverClaimSource(ctx, record, state, srcAdapter); err != nil {
		return c.fail(state, record, err)
	}
	state.Status = types.HubSourceLocked

	if err := c.hubDeposit(ctx, record, state, hubAdapter, solverHubAddr); err != nil {
		return c.fail(state, record, err)
	}
	state.Status = types.HubMixing

	if err := c.hubMix(ctx, record, state, cfg); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.hubWithdraw(ctx, record, state, hubAdapter); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.lockDestination(ctx, record, state, dstAdapter, solverDestAddr, userDestAddr, destAmount); err != nil {
		return c.fail(state, record, err)
	}
	state.Status = types.HubDestLocked

	if err := c.confirm(ctx, record, "ConfirmingDestLock", dstAdapter, state.DestHTLC.TxHash); err != nil {
		return c.fail(state, record, err)
	}
	if err := c.userClaimDest(ctx, record, state, dstAdapter); err != nil {
		return c.fail(state, record, err)
	}

	state.Status = types.HubCompleted
	state.Flags = PrivacyFlags(state)

	banner := color.New(color.FgGreen, color.Bold).Sprintf("privacy hub swap completed: id=%s", state.SwapID)
	log.Info(banner)

	return state, record, nil
}

// PrivacyFlags derives the spec §4.6 completion flags from a state.
func PrivacyFlags(state *types.PrivacyHubSwapState) types.PrivacyFlags {
	return types.PrivacyFlags{
		CorrelationBroken:  state.SourceHashlock != state.DestHashlock,
		TimingDecorrelated: state.RandomDelay > 0,
		AddressesOneTime:   state.UserStealthAddress.Address != "" && state.SolverStealthAddress.Address != "",
	}
}

func (c *Coordinator) initialize(record *ExecutionRecord, intent *types.SwapIntent, cfg Config) (*types.PrivacyHubSwapState, error) {
	now := c.now()
	record.begin("Initializing", now)

	sourceSecret, err := secret.Generate()
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "generate source secret", err)
	}
	destSecret, err := secret.Generate()
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "generate dest secret", err)
	}

	sourceExpiry, err := timelock.Sample(now, timelock.SourceLeg)
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "sample source timelock", err)
	}
	destExpiry, err := timelock.Sample(now, timelock.DestinationLeg)
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "sample dest timelock", err)
	}
	randomDelay, err := timelock.SampleDuration(cfg.MinMixingDelay, cfg.MaxMixingDelay)
	if err != nil {
		return nil, record.failAndWrap("Initializing", c.now(), common.KindHTLCCreationFailed, "sample random mixing delay", err)
	}

	sourceHashlock := secret.Hash(sourceSecret)
	destHashlock := secret.Hash(destSecret)

	state := &types.PrivacyHubSwapState{
		SwapID:         intent.ID,
		SourceSecret:   sourceSecret,
		DestSecret:     destSecret,
		SourceHashlock: sourceHashlock,
		DestHashlock:   destHashlock,
		Status:         types.HubPending,
		SourceHTLC: types.HTLCStatus{
			State:    types.HTLCPending,
			Amount:   intent.Source.Amount,
			Hashlock: sourceHashlock,
			Timelock: sourceExpiry.Unix(),
		},
		DestHTLC: types.HTLCStatus{
			State:    types.HTLCPending,
			Hashlock: destHashlock,
			Timelock: destExpiry.Unix(),
		},
		SourceTimelock:    sourceExpiry.Unix(),
		DestTimelock:      destExpiry.Unix(),
		RandomDelay:       randomDelay,
		ScheduledDestLock: now.Add(randomDelay),
	}

	if cfg.UseDecoyTransactions && cfg.DecoyCount > 0 {
		state.DecoyTransactions = c.scheduleDecoys(cfg, now, randomDelay)
	}

	record.finish("Initializing", c.now(), nil)
	return state, nil
}

// scheduleDecoys spreads cfg.DecoyCount deposit/withdrawal pairs evenly
// across the mixing window, per spec §4.6 "Optional decoy transactions".
// Each pair shares a CorrelationTag so tests and logs can match a decoy's
// two legs without that tag ever appearing on-chain.
func (c *Coordinator) scheduleDecoys(cfg Config, start time.Time, window time.Duration) []types.DecoyTransaction {
	decoys := make([]types.DecoyTransaction, 0, cfg.DecoyCount*2)
	step := window / time.Duration(cfg.DecoyCount+1)

	for i := 1; i <= cfg.DecoyCount; i++ {
		tag := c.newUUID()
		at := start.Add(step * time.Duration(i))
		decoys = append(decoys,
			types.DecoyTransaction{Chain: cfg.HubChain, Kind: "deposit", ScheduledAt: at, CorrelationTag: tag},
			types.DecoyTransaction{Chain: cfg.HubChain, Kind: "withdrawal", ScheduledAt: at.Add(step / 2), CorrelationTag: tag},
		)
	}
	return decoys
}

func (c *Coordinator) generateStealthAddresses(
	record *ExecutionRecord,
	state *types.PrivacyHubSwapState,
	sourceChain, destChain common.Chain,
	userBaseAddr, solverBaseAddr string,
) error {
	record.begin("GeneratingStealthAddresses", c.now())

	userStealth, err := c.stealth.Generate(sourceChain, userBaseAddr)
	if err != nil {
		return record.failAndWrap("GeneratingStealthAddresses", c.now(), common.KindStealthAddressGenerationFailed, "generate user stealth address", err)
	}
	solverStealth, err := c.stealth.Generate(destChain, solverBaseAddr)
	if err != nil {
		return record.failAndWrap("GeneratingStealthAddresses", c.now(), common.KindStealthAddressGenerationFailed, "generate solver stealth address", err)
	}

	state.UserStealthAddress = userStealth
	state.SolverStealthAddress = solverStealth

	record.finish("GeneratingStealthAddresses", c.now(), nil)
	return nil
}

func (c *Coordinator) lockSource(
	ctx context.Context,
	record *ExecutionRecord,
	state *types.PrivacyHubSwapState,
	a adapter.ChainAdapter,
	sender, receiver string,
) error {
	record.begin("LockingSource", c.now())

	params := adapter.HTLCParams{
		Sender:   sender,
		Receiver: receiver,
		Amount:   state.SourceHTLC.Amount,
		Hashlock: state.SourceHashlock,
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

func (c *Coordinator) confirm(ctx context.Context, record *ExecutionRecord, phaseName string, a adapter.ChainAdapter, txHash string) error {
	record.begin(phaseName, c.now())

	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		return a.WaitForConfirmation(ctx, txHash)
	})
	if res.Err != nil {
		return record.failAndWrap(phaseName, c.now(), common.KindNetworkError, "confirm lock", res.Err)
	}

	record.finish(phaseName, c.now(), nil)
	return nil
}

// solverClaimSource reveals sourceSecret to claim the source HTLC,
// closing the source leg cryptographically independently of the
// destination leg (spec §4.6 step 3).
func (c *Coordinator) solverClaimSource(ctx context.Context, record *ExecutionRecord, state *types.PrivacyHubSwapState, a adapter.ChainAdapter) error {
	record.begin("SolverClaimingSource", c.now())

	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		tx, err := a.ClaimHTLC(ctx, state.SourceHTLC.ID, state.SourceSecret.Bytes())
		if err != nil {
			return err
		}
		unsigned = tx
		return nil
	})
	if res.Err != nil {
		return record.failAndWrap("SolverClaimingSource", c.now(), common.KindTransactionBuildFailed, "claim source HTLC", res.Err)
	}

	signed, err := a.SignTransaction(ctx, unsigned, nil)
	if err != nil {
		return record.failAndWrap("SolverClaimingSource", c.now(), common.KindTransactionBuildFailed, "sign claim tx", err)
	}

	txHash, err := a.BroadcastTransaction(ctx, signed)
	if err != nil {
		return record.failAndWrap("SolverClaimingSource", c.now(), common.KindNetworkError, "broadcast claim tx", err)
	}

	state.SourceHTLC.ClaimTxHash = txHash
	state.SourceHTLC.State = types.HTLCClaimed
	record.TxHashes["SolverClaimingSource"] = txHash
	record.finish("SolverClaimingSource", c.now(), nil)
	return nil
}

// hubDeposit moves the solver's claimed value into the configured hub
// chain's shielded pool, per spec §4.6 step 4.
func (c *Coordinator) hubDeposit(ctx context.Context, record *ExecutionRecord, state *types.PrivacyHubSwapState, hub adapter.ChainAdapter, solverHubAddr string) error {
	record.begin("HubDepositing", c.now())

	params := adapter.TxParams{From: solverHubAddr, To: solverHubAddr, Amount: state.SourceHTLC.Amount, Memo: "hub-deposit"}
	txHash, err := c.buildSignBroadcast(ctx, hub, params)
	if err != nil {
		return record.failAndWrap("HubDepositing", c.now(), common.KindTransactionBuildFailed, "deposit into hub pool", err)
	}

	state.HubDepositTx = txHash
	record.TxHashes["HubDepositing"] = txHash
	record.finish("HubDepositing", c.now(), nil)
	return nil
}

// hubMix waits randomDelay inside the shielded pool, interleaving any
// scheduled decoy transactions, per spec §4.6 steps 5 and "Optional decoy
// transactions". Decoys are logged, not actually broadcast: a dummy
// deposit/withdrawal pair has no on-chain counterpart to build against in
// this module (per-chain shielded-pool transaction construction is an
// adapter concern), so scheduling and timing are what this coordinator
// owns; the adapter that eventually drives the hub chain is responsible
// for emitting the decoy traffic itself.
func (c *Coordinator) hubMix(ctx context.Context, record *ExecutionRecord, state *types.PrivacyHubSwapState, cfg Config) error {
	record.begin("HubMixing", c.now())
	state.HubMixingStarted = c.now()

	if len(state.DecoyTransactions) > 0 {
		log.Debugf("swap %s scheduled %d decoy transactions during mixing", state.SwapID, len(state.DecoyTransactions))
	}

	if err := c.sleep(ctx, state.RandomDelay); err != nil {
		return record.failAndWrap("HubMixing", c.now(), common.KindTimeout, "wait out mixing delay", err)
	}

	state.HubMixingCompleted = c.now()
	record.finish("HubMixing", c.now(), nil)
	return nil
}

// hubWithdraw moves value out of the hub pool to the solver's stealth
// address on the destination chain, per spec §4.6 step 6.
func (c *Coordinator) hubWithdraw(ctx context.Context, record *ExecutionRecord, state *types.PrivacyHubSwapState, hub adapter.ChainAdapter) error {
	record.begin("HubWithdrawing", c.now())

	params := adapter.TxParams{
		From:   state.SolverStealthAddress.Address,
		To:     state.SolverStealthAddress.Address,
		Amount: state.SourceHTLC.Amount,
		Memo:   "hub-withdraw",
	}
	txHash, err := c.buildSignBroadcast(ctx, hub, params)
	if err != nil {
		return record.failAndWrap("HubWithdrawing", c.now(), common.KindTransactionBuildFailed, "withdraw from hub pool", err)
	}

	state.HubWithdrawTx = txHash
	record.TxHashes["HubWithdrawing"] = txHash
	record.finish("HubWithdrawing", c.now(), nil)
	return nil
}

func (c *Coordinator) lockDestination(
	ctx context.Context,
	record *ExecutionRecord,
	state *types.PrivacyHubSwapState,
	a adapter.ChainAdapter,
	sender, receiver string,
	amount common.Amount,
) error {
	record.begin("LockingDestination", c.now())

	params := adapter.HTLCParams{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Hashlock: state.DestHashlock,
		Timelock: state.DestHTLC.Timelock,
	}

	txHash, err := c.createAndBroadcastHTLC(ctx, a, params)
	if err != nil {
		return record.failAndWrap("LockingDestination", c.now(), common.KindTransactionBuildFailed, "lock destination HTLC", err)
	}

	state.DestHTLC.ID = txHash
	state.DestHTLC.Amount = amount
	state.DestHTLC.TxHash = txHash
	state.DestHTLC.State = types.HTLCLocked
	record.TxHashes["LockingDestination"] = txHash
	record.finish("LockingDestination", c.now(), nil)
	return nil
}

func (c *Coordinator) userClaimDest(ctx context.Context, record *ExecutionRecord, state *types.PrivacyHubSwapState, a adapter.ChainAdapter) error {
	record.begin("UserClaimingDest", c.now())

	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		tx, err := a.ClaimHTLC(ctx, state.DestHTLC.ID, state.DestSecret.Bytes())
		if err != nil {
			return err
		}
		unsigned = tx
		return nil
	})
	if res.Err != nil {
		return record.failAndWrap("UserClaimingDest", c.now(), common.KindTransactionBuildFailed, "claim destination HTLC", res.Err)
	}

	signed, err := a.SignTransaction(ctx, unsigned, nil)
	if err != nil {
		return record.failAndWrap("UserClaimingDest", c.now(), common.KindTransactionBuildFailed, "sign claim tx", err)
	}

	txHash, err := a.BroadcastTransaction(ctx, signed)
	if err != nil {
		return record.failAndWrap("UserClaimingDest", c.now(), common.KindNetworkError, "broadcast claim tx", err)
	}

	state.DestHTLC.ClaimTxHash = txHash
	state.DestHTLC.State = types.HTLCClaimed
	record.TxHashes["UserClaimingDest"] = txHash
	record.finish("UserClaimingDest", c.now(), nil)
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

func (c *Coordinator) buildSignBroadcast(ctx context.Context, a adapter.ChainAdapter, params adapter.TxParams) (string, error) {
	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, c.retry, func(ctx context.Context) error {
		tx, err := a.BuildTransaction(ctx, params)
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

func (c *Coordinator) fail(state *types.PrivacyHubSwapState, record *ExecutionRecord, err error) (*types.PrivacyHubSwapState, *ExecutionRecord, error) {
	state.Status = types.HubFailed
	banner := color.New(color.FgRed, color.Bold).Sprintf("privacy hub swap failed: id=%s err=%s", state.SwapID, err)
	log.Warn(banner)
	return state, record, err
}

func (c *Coordinator) track(state *types.PrivacyHubSwapState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active[state.SwapID] = state
}

func (c *Coordinator) untrack(swapID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, swapID)
}

// failAndWrap marks phase failed in the record and wraps err with kind,
// returning the wrapped error for the caller to propagate.
func (r *ExecutionRecord) failAndWrap(phase string, now time.Time, kind common.Kind, msg string, err error) error {
	wrapped := common.Wrap(kind, err, msg).WithContext("phase", phase)
	r.finish(phase, now, wrapped)
	return wrapped
}
