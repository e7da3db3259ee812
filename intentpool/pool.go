// Package intentpool validates, stores, and matches user swap intents
// against solver inventory, per spec §4.3.
package intentpool

import (
	"context"
	"sync"
	"time"

	logging "github.com/ipfs/go-log"

	"github.com/Leihyn/omniswap-sdk-sub001/resilience"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

var log = logging.Logger("intentpool")

// Clock abstracts time.Now so submit()/cancel() deadline checks are
// deterministic in tests, the same way coordinators take an explicit
// "now" rather than calling time.Now directly inline.
type Clock func() time.Time

// Pool holds SwapIntents keyed by id. Per spec §5, operations are
// per-id serializable; there is no pool-wide ordering guarantee, so a
// single RWMutex guarding the map (rather than one lock per intent) is
// sufficient and keeps the implementation simple.
type Pool struct {
	mu      sync.RWMutex
	intents map[string]*types.SwapIntent
	clock   Clock
}

// New returns an empty Pool using time.Now as its clock.
func New() *Pool {
	return &Pool{
		intents: make(map[string]*types.SwapIntent),
		clock:   time.Now,
	}
}

// NewWithClock is New, but with an injectable clock for tests.
func NewWithClock(clock Clock) *Pool {
	p := New()
	p.clock = clock
	return p
}

// Submit validates intent per spec §4.3 and stores it as Pending. On
// validation failure it returns a KindInvalidIntent error and does not
// store the intent.
func (p *Pool) Submit(intent *types.SwapIntent) error {
	now := p.clock().UnixMilli()
	if err := intent.Validate(now); err != nil {
		return err
	}

	intent.Status = types.IntentPending
	intent.CreatedAtUnixMilli = now
	intent.UpdatedAtUnixMilli = now

	p.mu.Lock()
	defer p.mu.Unlock()
	p.intents[intent.ID] = intent

	log.Debugf("submitted intent %s: %s/%s -> %s/%s", intent.ID,
		intent.Source.Chain, intent.Source.Asset.Symbol,
		intent.Destination.Chain, intent.Destination.Asset.Symbol)

	return nil
}

// Get returns the stored intent for id, or (nil, false) if absent.
func (p *Pool) Get(id string) (*types.SwapIntent, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	intent, ok := p.intents[id]
	return intent, ok
}

// Cancel sets intent id to Cancelled if it exists and is not already
// terminal. Unknown ids and already-terminal intents are a no-op, making
// Cancel idempotent (spec §8 round-trip property).
func (p *Pool) Cancel(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[id]
	if !ok {
		return
	}
	if intent.Status.IsTerminal() {
		return
	}

	intent.Status = types.IntentCancelled
	intent.UpdatedAtUnixMilli = p.clock().UnixMilli()
}

// Match checks whether solver's inventory covers the intent's minimum
// destination amount; if so it marks the intent Matched and returns true.
// Unknown id returns false.
func (p *Pool) Match(id string, solver *types.Solver) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[id]
	if !ok {
		return false
	}

	if !solver.CanFill(intent.Destination.Asset.Symbol, intent.Destination.MinAmount) {
		return false
	}

	intent.Status = types.IntentMatched
	intent.UpdatedAtUnixMilli = p.clock().UnixMilli()
	return true
}

// SubmitBatchResult pairs a submitted intent's id with the error (if any)
// from validating/storing it.
type SubmitBatchResult struct {
	IntentID string
	Err      error
}

// SubmitBatch submits many intents with bounded concurrency, collecting a
// per-item result instead of failing the whole call on the first bad
// intent. It reuses resilience.Batch the same way the Refund Manager
// reuses it for parallel refunds (spec §4.2/§4.8), generalizing the
// teacher's one-goroutine-per-swap-subscription shape (rpc/ws.go) into a
// bounded-concurrency primitive instead of bespoke fan-out code.
func (p *Pool) SubmitBatch(ctx context.Context, intents []*types.SwapIntent) []SubmitBatchResult {
	n := len(intents)
	raw := resilience.Batch(ctx, n, resilience.BatchOptions{Concurrency: 3}, func(_ context.Context, i int) error {
		return p.Submit(intents[i])
	})

	out := make([]SubmitBatchResult, n)
	for i, r := range raw {
		out[i] = SubmitBatchResult{IntentID: intents[i].ID, Err: r.Err}
	}
	return out
}

// Len returns the number of intents currently stored, including terminal
// ones. Primarily useful for tests and operator introspection.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.intents)
}
