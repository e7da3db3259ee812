package refundmanager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color" //nolint:misspell
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log"

	"github.com/Leihyn/omniswap-sdk-sub001/adapter"
	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/resilience"
)

var log = logging.Logger("refundmanager")

// OnRefundAttempt is called once per processed entry at the end of a
// checkRefunds pass, per spec §4.8.
type OnRefundAttempt func(swapID string, chain common.Chain, success bool)

// OnError is called whenever a refund attempt or the monitoring loop
// itself errors, per spec §4.8. context is a short label identifying
// where the error occurred (e.g. an htlcId or "monitor").
type OnError func(err error, context string)

// Manager watches registered HTLCs and refunds them once their timelock
// (plus configured buffer) has passed. It owns no coordinator
// back-reference: coordinators register entries and forget them, per
// spec §5 "Cyclic references: none required."
type Manager struct {
	registry *adapter.Registry
	retry    resilience.RetryOptions
	cfg      Config
	now      func() time.Time
	newID    func() string

	mu      sync.Mutex
	pending map[string]*RefundEntry // keyed by HTLCID
	history []RefundRecord

	onAttempt OnRefundAttempt
	onErr     OnError

	checking int32 // atomic: 1 while a checkRefunds pass is in flight

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	runMu   sync.Mutex
}

// NewManager returns a Manager backed by registry for chain lookups, cfg
// for its monitoring cadence (zero value selects DefaultConfig), and
// retry for transient adapter failures (zero value selects
// resilience.StandardPreset()).
func NewManager(registry *adapter.Registry, cfg Config, retry resilience.RetryOptions) *Manager {
	if cfg.CheckInterval == 0 {
		cfg = DefaultConfig()
	}
	if cfg.MaxConcurrentRefunds <= 0 {
		cfg.MaxConcurrentRefunds = 3
	}
	if retry.MaxAttempts == 0 {
		retry = resilience.StandardPreset()
	}
	return &Manager{
		registry: registry,
		retry:    retry,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		pending:  make(map[string]*RefundEntry),
	}
}

// OnRefundAttempt registers cb to be invoked after each refund attempt.
func (m *Manager) OnRefundAttempt(cb OnRefundAttempt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAttempt = cb
}

// OnError registers cb to be invoked whenever an attempt or the
// monitoring loop errors.
func (m *Manager) OnError(cb OnError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onErr = cb
}

// Register adds entry to the pending queue, keyed by its HTLCID. A second
// Register for the same HTLCID overwrites the first.
func (m *Manager) Register(entry RefundEntry) {
	entry.Status = RefundPending
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[entry.HTLCID] = &entry
}

// Unregister drops htlcID from the pending queue without recording a
// history entry, used when a swap completes normally (claimed, not
// refunded) and no longer needs watching.
func (m *Manager) Unregister(htlcID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, htlcID)
}

// GetPendingRefunds returns a snapshot of every entry still in the queue,
// regardless of eligibility.
func (m *Manager) GetPendingRefunds() []RefundEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RefundEntry, 0, len(m.pending))
	for _, e := range m.pending {
		out = append(out, *e)
	}
	return out
}

// GetEligibleRefunds returns every pending entry whose timelock (plus
// RefundBuffer) has passed as of now.
func (m *Manager) GetEligibleRefunds() []RefundEntry {
	nowUnix := m.now().Unix()
	bufferSeconds := int64(m.cfg.RefundBuffer / time.Second)

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RefundEntry, 0, len(m.pending))
	for _, e := range m.pending {
		if e.Status == RefundPending && e.eligible(nowUnix, bufferSeconds) {
			out = append(out, *e)
		}
	}
	return out
}

// GetRefundHistory returns every recorded attempt, oldest first.
func (m *Manager) GetRefundHistory() []RefundRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RefundRecord, len(m.history))
	copy(out, m.history)
	return out
}

// GetStats summarizes the queue and history, per spec §4.8.
func (m *Manager) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{}
	for _, e := range m.pending {
		switch e.Status {
		case RefundProcessing:
			stats.Processing++
		default:
			stats.Pending++
		}
	}

	var succeeded int
	for _, r := range m.history {
		stats.TotalAttempts++
		if r.Success {
			succeeded++
			stats.Completed++
		} else {
			stats.Failed++
		}
	}
	if stats.TotalAttempts > 0 {
		stats.SuccessRate = float64(succeeded) / float64(stats.TotalAttempts)
	}
	return stats
}

// StartMonitoring launches the single-threaded periodic task that invokes
// checkRefunds every cfg.CheckInterval, until ctx is cancelled or
// StopMonitoring is called. Calling it twice without an intervening
// StopMonitoring is a no-op.
func (m *Manager) StartMonitoring(ctx context.Context) {
	m.runMu.Lock()
	defer m.runMu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})

	go m.monitorLoop(ctx, m.stopCh, m.doneCh)
}

// StopMonitoring stops the periodic task started by StartMonitoring and
// waits for the current tick, if any, to finish.
func (m *Manager) StopMonitoring() {
	m.runMu.Lock()
	if !m.running {
		m.runMu.Unlock()
		return
	}
	stopCh := m.stopCh
	doneCh := m.doneCh
	m.running = false
	m.runMu.Unlock()

	close(stopCh)
	<-doneCh
}

func (m *Manager) monitorLoop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(m.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			m.CheckRefunds(ctx)
		}
	}
}

// CheckRefunds snapshots eligible entries, refunds up to
// MaxConcurrentRefunds of them in parallel, and appends one RefundRecord
// per attempt to the history. A pass already in flight causes this call
// to return immediately with nil, per spec §5 "a pass in progress skips
// the next tick."
func (m *Manager) CheckRefunds(ctx context.Context) []RefundRecord {
	if !atomic.CompareAndSwapInt32(&m.checking, 0, 1) {
		return nil
	}
	defer atomic.StoreInt32(&m.checking, 0)

	eligible := m.GetEligibleRefunds()
	if len(eligible) == 0 {
		return nil
	}

	passID := m.newID()
	log.Debugf("refund pass %s: %d entries eligible", passID, len(eligible))

	m.markProcessing(eligible)

	batchOpts := resilience.BatchOptions{
		Concurrency: m.cfg.MaxConcurrentRefunds,
	}
	records := make([]RefundRecord, len(eligible))
	resilience.Batch(ctx, len(eligible), batchOpts, func(ctx context.Context, i int) error {
		rec, err := m.attemptRefund(ctx, eligible[i])
		records[i] = rec
		return err
	})

	m.mu.Lock()
	m.history = append(m.history, records...)
	m.mu.Unlock()

	for _, rec := range records {
		m.notifyAttempt(rec)
	}

	return records
}

// ForceRefund bypasses the timelock-eligibility check (operator override,
// spec §4.8) and refunds htlcID immediately, regardless of its current
// status. Whether the adapter's own on-chain timelock check still applies
// is left entirely to the adapter (spec §9 Open Question).
func (m *Manager) ForceRefund(ctx context.Context, htlcID string) (RefundRecord, error) {
	m.mu.Lock()
	entry, ok := m.pending[htlcID]
	var snapshot RefundEntry
	if ok {
		snapshot = *entry
	}
	m.mu.Unlock()

	if !ok {
		err := common.NewError(common.KindHTLCCreationFailed, "no pending refund entry for htlc %s", htlcID)
		return RefundRecord{}, err
	}

	m.markProcessing([]RefundEntry{snapshot})
	rec, err := m.attemptRefund(ctx, snapshot)

	m.mu.Lock()
	m.history = append(m.history, rec)
	m.mu.Unlock()

	m.notifyAttempt(rec)
	return rec, err
}

func (m *Manager) markProcessing(entries []RefundEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		if existing, ok := m.pending[e.HTLCID]; ok {
			existing.Status = RefundProcessing
		}
	}
}

func (m *Manager) attemptRefund(ctx context.Context, entry RefundEntry) (RefundRecord, error) {
	a, err := m.registry.Get(entry.Chain)
	if err != nil {
		return m.finishEntry(entry, false, "", err), err
	}

	var unsigned adapter.UnsignedTx
	res := resilience.Retry(ctx, m.retry, func(ctx context.Context) error {
		tx, err := a.RefundHTLC(ctx, entry.HTLCID)
		if err != nil {
			return err
		}
		unsigned = tx
		return nil
	})
	if res.Err != nil {
		return m.finishEntry(entry, false, "", res.Err), res.Err
	}

	signed, err := a.SignTransaction(ctx, unsigned, nil)
	if err != nil {
		return m.finishEntry(entry, false, "", err), err
	}

	txHash, err := a.BroadcastTransaction(ctx, signed)
	if err != nil {
		return m.finishEntry(entry, false, "", err), err
	}

	return m.finishEntry(entry, true, txHash, nil), nil
}

// finishEntry applies a completed attempt's outcome to the in-memory
// queue: success removes the entry, failure bumps its attempt count and
// returns it to pending (unless MaxAttemptsPerEntry has been reached, in
// which case it is left pending but no longer auto-retried by future
// passes - a reattempt still succeeds via ForceRefund).
func (m *Manager) finishEntry(entry RefundEntry, success bool, txHash string, attemptErr error) RefundRecord {
	rec := RefundRecord{
		HTLCID:             entry.HTLCID,
		Chain:              entry.Chain,
		Success:            success,
		TxHash:             txHash,
		TimestampUnixMilli: m.now().UnixMilli(),
	}
	if attemptErr != nil {
		rec.Error = attemptErr.Error()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.pending[entry.HTLCID]
	if !ok {
		return rec
	}

	if success {
		delete(m.pending, entry.HTLCID)
		return rec
	}

	existing.Attempts++
	existing.Status = RefundFailed
	if m.cfg.MaxAttemptsPerEntry <= 0 || existing.Attempts < m.cfg.MaxAttemptsPerEntry {
		existing.Status = RefundPending
	}
	return rec
}

func (m *Manager) notifyAttempt(rec RefundRecord) {
	m.mu.Lock()
	onAttempt := m.onAttempt
	onErr := m.onErr
	m.mu.Unlock()

	if onAttempt != nil {
		onAttempt(rec.HTLCID, rec.Chain, rec.Success)
	}
	if !rec.Success {
		if onErr != nil {
			onErr(common.NewError(common.KindHTLCCreationFailed, "%s", rec.Error), rec.HTLCID)
		}
		banner := color.New(color.FgYellow).Sprintf("refund attempt failed: htlc=%s chain=%s err=%s", rec.HTLCID, rec.Chain, rec.Error)
		log.Warn(banner)
	} else {
		log.Infof("refund succeeded: htlc=%s chain=%s tx=%s", rec.HTLCID, rec.Chain, rec.TxHash)
	}
}

// ExportState serializes the pending queue and history for persistence,
// per spec §6.
func (m *Manager) ExportState() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := State{
		PendingRefunds: make([]persistedEntry, 0, len(m.pending)),
		RefundHistory:  make([]persistedRecord, 0, len(m.history)),
	}
	for _, e := range m.pending {
		state.PendingRefunds = append(state.PendingRefunds, toPersistedEntry(*e))
	}
	for _, r := range m.history {
		state.RefundHistory = append(state.RefundHistory, toPersistedRecord(r))
	}
	return state
}

// ImportState replaces the pending queue and history with what was
// previously exported, reconstructing the queue exactly.
func (m *Manager) ImportState(state State) error {
	pending := make(map[string]*RefundEntry, len(state.PendingRefunds))
	for _, p := range state.PendingRefunds {
		entry, err := fromPersistedEntry(p)
		if err != nil {
			return err
		}
		e := entry
		pending[e.HTLCID] = &e
	}

	history := make([]RefundRecord, 0, len(state.RefundHistory))
	for _, p := range state.RefundHistory {
		history = append(history, fromPersistedRecord(p))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = pending
	m.history = history
	return nil
}
