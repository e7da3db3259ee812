package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// BreakerState is one of the three circuit-breaker states from spec §4.2.
type BreakerState int

const (
	// Closed is the starting state: calls pass through normally.
	Closed BreakerState = iota
	// Open fails every call fast until resetTimeout elapses since the
	// last failure.
	Open
	// HalfOpen allows exactly one probe call through to decide whether to
	// close or reopen.
	HalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	case HalfOpen:
		return "HalfOpen"
	default:
		return "Unknown"
	}
}

// BreakerOptions configures a CircuitBreaker.
type BreakerOptions struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	OnStateChange    func(from, to BreakerState)
}

// CircuitBreaker protects a downstream operation (typically a chain
// adapter call) from cascading failures, per spec §4.2. It starts Closed;
// FailureThreshold consecutive failures trip it Open; after ResetTimeout
// it allows one HalfOpen probe, which closes it on success or reopens it
// on failure.
type CircuitBreaker struct {
	opts BreakerOptions

	mu          sync.Mutex
	state       BreakerState
	failures    int
	lastFailure time.Time
	halfOpenBusy bool
}

// NewCircuitBreaker builds a breaker in the Closed state.
func NewCircuitBreaker(opts BreakerOptions) *CircuitBreaker {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.ResetTimeout <= 0 {
		opts.ResetTimeout = 30 * time.Second
	}
	return &CircuitBreaker{opts: opts, state: Closed}
}

// State returns the breaker's current state.
func (b *CircuitBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Call executes fn through the breaker. In Open state (before the reset
// timeout elapses) it fails fast with a KindCircuitOpen error without
// invoking fn. In HalfOpen, only one caller at a time is allowed through
// as the probe; concurrent callers fail fast as if Open.
func (b *CircuitBreaker) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	if !b.allow() {
		return common.NewError(common.KindCircuitOpen, "circuit breaker is open")
	}

	err := fn(ctx)
	b.record(err)
	return err
}

func (b *CircuitBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Closed:
		return true
	case Open:
		if time.Since(b.lastFailure) >= b.opts.ResetTimeout {
			b.transition(HalfOpen)
			b.halfOpenBusy = true
			return true
		}
		return false
	case HalfOpen:
		if b.halfOpenBusy {
			return false
		}
		b.halfOpenBusy = true
		return true
	default:
		return false
	}
}

func (b *CircuitBreaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == HalfOpen {
		b.halfOpenBusy = false
		if err == nil {
			b.failures = 0
			b.transition(Closed)
		} else {
			b.lastFailure = time.Now()
			b.transition(Open)
		}
		return
	}

	if err == nil {
		b.failures = 0
		return
	}

	b.failures++
	b.lastFailure = time.Now()
	if b.failures >= b.opts.FailureThreshold {
		b.transition(Open)
	}
}

// transition must be called with b.mu held.
func (b *CircuitBreaker) transition(to BreakerState) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	if b.opts.OnStateChange != nil {
		b.opts.OnStateChange(from, to)
	}
}
