// Package resilience implements the retry, timeout, circuit-breaker, and
// bounded-concurrency batch primitives of spec §4.2. These are hand-rolled
// against the spec's exact formulas (delay = min(initial*mult^(n-1), max),
// jitter in [0.5d, 1.0d], named presets, predicate-gated retry) rather than
// built on an ecosystem backoff library, because no library in the
// reference corpus exposes that precise preset/predicate/timeout contract;
// see DESIGN.md. The shape - a small struct with explicit options and a
// context-aware call - follows the teacher's own state-machine structs
// (protocol/bob/swap_state.go): explicit fields, no hidden globals.
package resilience

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// RetryOptions configures Retry's attempt count, backoff schedule, jitter,
// and retry predicate, per spec §4.2.
type RetryOptions struct {
	MaxAttempts        int
	InitialDelay       time.Duration
	MaxDelay           time.Duration
	BackoffMultiplier  float64
	Jitter             bool
	ShouldRetry        func(err error, attempt int) bool
	OnRetry            func(err error, attempt int, delay time.Duration)
	AttemptTimeout     time.Duration
}

// FastPreset: 3 attempts, 0.5s initial delay, doubling, jittered.
func FastPreset() RetryOptions {
	return RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond, MaxDelay: 10 * time.Second, BackoffMultiplier: 2, Jitter: true}
}

// StandardPreset: 5 attempts, 1s initial delay, doubling, jittered.
func StandardPreset() RetryOptions {
	return RetryOptions{MaxAttempts: 5, InitialDelay: time.Second, MaxDelay: 30 * time.Second, BackoffMultiplier: 2, Jitter: true}
}

// AggressivePreset: 10 attempts, 0.5s initial delay, doubling, jittered.
func AggressivePreset() RetryOptions {
	return RetryOptions{MaxAttempts: 10, InitialDelay: 500 * time.Millisecond, MaxDelay: 30 * time.Second, BackoffMultiplier: 2, Jitter: true}
}

// PatientPreset: 5 attempts, 5s initial delay, doubling, jittered.
func PatientPreset() RetryOptions {
	return RetryOptions{MaxAttempts: 5, InitialDelay: 5 * time.Second, MaxDelay: 60 * time.Second, BackoffMultiplier: 2, Jitter: true}
}

// DefaultShouldRetry returns true for retryable error kinds (network,
// timeout, transient adapter) per §7, and false otherwise - including for
// plain errors that don't carry a *common.SwapError, which are treated as
// non-retryable by default.
func DefaultShouldRetry(err error, _ int) bool {
	if err == nil {
		return false
	}
	if kind, ok := common.KindOf(err); ok {
		return retryableKind(kind)
	}
	return false
}

func retryableKind(kind common.Kind) bool {
	switch kind {
	case common.KindNetworkError, common.KindTimeout, common.KindAdapterNotInitialized, common.KindTransactionBuildFailed:
		return true
	default:
		return false
	}
}

// delayForAttempt computes min(initial * multiplier^(attempt-1), max),
// attempt is 1-indexed.
func delayForAttempt(opts RetryOptions, attempt int) time.Duration {
	d := float64(opts.InitialDelay)
	for i := 1; i < attempt; i++ {
		d *= opts.BackoffMultiplier
	}
	if max := float64(opts.MaxDelay); opts.MaxDelay > 0 && d > max {
		d = max
	}
	return time.Duration(d)
}

func jitter(d time.Duration) (time.Duration, error) {
	u, err := uniformFraction()
	if err != nil {
		return 0, err
	}
	factor := 0.5 + 0.5*u // uniform(0.5, 1.0)
	return time.Duration(float64(d) * factor), nil
}

func uniformFraction() (float64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	const mantissaBits = 53
	v := binary.BigEndian.Uint64(buf[:]) >> (64 - mantissaBits)
	return float64(v) / float64(uint64(1)<<mantissaBits), nil
}

// Result carries the outcome of a Retry call: the final error (nil on
// success) and how many attempts were made, needed by tests asserting
// properties like "attempts==3".
type Result struct {
	Attempts int
	Err      error
}

// Retry runs fn up to opts.MaxAttempts times, applying the spec §4.2
// backoff/jitter schedule between attempts and stopping early if
// opts.ShouldRetry (or DefaultShouldRetry) says not to retry.
func Retry(ctx context.Context, opts RetryOptions, fn func(ctx context.Context) error) Result {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	shouldRetry := opts.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = DefaultShouldRetry
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		callCtx := ctx
		var cancel context.CancelFunc
		if opts.AttemptTimeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, opts.AttemptTimeout)
		}

		err := fn(callCtx)
		if cancel != nil {
			cancel()
		}

		if err == nil {
			return Result{Attempts: attempt, Err: nil}
		}

		lastErr = err

		if ctx.Err() != nil {
			return Result{Attempts: attempt, Err: ctx.Err()}
		}

		if attempt == opts.MaxAttempts || !shouldRetry(err, attempt) {
			return Result{Attempts: attempt, Err: lastErr}
		}

		delay := delayForAttempt(opts, attempt)
		if opts.Jitter {
			jittered, jerr := jitter(delay)
			if jerr == nil {
				delay = jittered
			}
		}

		if opts.OnRetry != nil {
			opts.OnRetry(err, attempt, delay)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Result{Attempts: attempt, Err: ctx.Err()}
		}
	}

	return Result{Attempts: opts.MaxAttempts, Err: fmt.Errorf("retry: exhausted attempts: %w", lastErr)}
}
