// Package refundmanager monitors HTLCs registered by the coordinators and
// drives their refund once a timelock expires, per spec §4.8. It holds no
// secrets and never back-references a coordinator: coordinators push weak
// references in (swapId, htlcId, chain, timelock, refundAddress) and
// forget about them, the same "fire and forget" registration shape the
// teacher's net.MessageSender consumers use for outbound swap messages.
package refundmanager

import "time"

// Config tunes the manager's periodic monitoring pass.
type Config struct {
	// CheckInterval is how often checkRefunds runs while monitoring.
	CheckInterval time.Duration

	// RefundBuffer is added to an entry's timelock before it becomes
	// eligible, absorbing clock skew between this process and the chain.
	RefundBuffer time.Duration

	// MaxConcurrentRefunds bounds how many refund attempts run in
	// parallel within a single checkRefunds pass.
	MaxConcurrentRefunds int

	// MaxAttemptsPerEntry caps how many times an entry is retried across
	// monitoring passes before it is left pending indefinitely without
	// further automatic attempts. 0 means unlimited.
	MaxAttemptsPerEntry int
}

// DefaultConfig returns the spec §4.8 defaults: a 60s check interval, no
// refund buffer, 3 concurrent refunds, unlimited attempts.
func DefaultConfig() Config {
	return Config{
		CheckInterval:         60 * time.Second,
		RefundBuffer:          0,
		MaxConcurrentRefunds:  3,
		MaxAttemptsPerEntry:   0,
	}
}
