package common

import (
	"errors"
	"fmt"
)

// Kind identifies a swap-core error family. Kinds are grouped into the
// numeric code ranges from spec §7 (1xxx Adapter ... 9xxx Network) so a
// caller can bucket on either the kind or the code range.
type Kind string

// Adapter errors (1xxx).
const (
	KindAdapterNotFound        Kind = "AdapterNotFound"
	KindAdapterNotInitialized  Kind = "AdapterNotInitialized"
)

// Transaction errors (2xxx).
const (
	KindTransactionBuildFailed Kind = "TransactionBuildFailed"
	KindInsufficientBalance    Kind = "InsufficientBalance"
)

// HTLC errors (3xxx).
const (
	KindHTLCCreationFailed     Kind = "HTLCCreationFailed"
	KindHTLCTimelockExpired    Kind = "HTLCTimelockExpired"
	KindHTLCTimelockNotExpired Kind = "HTLCTimelockNotExpired"
)

// Swap errors (4xxx).
const (
	KindNoRouteFound   Kind = "NoRouteFound"
	KindQuoteExpired   Kind = "QuoteExpired"
	KindInvalidIntent  Kind = "InvalidIntent"
	KindNoPrivateRoute Kind = "NoPrivateRoute"
)

// Solver errors (5xxx).
const (
	KindSolverUnavailable           Kind = "SolverUnavailable"
	KindSolverInsufficientInventory Kind = "SolverInsufficientInventory"
)

// Privacy errors (6xxx).
const (
	KindStealthAddressGenerationFailed Kind = "StealthAddressGenerationFailed"
	KindPrivacyHubUnavailable          Kind = "PrivacyHubUnavailable"
)

// Network errors (9xxx).
const (
	KindNetworkError Kind = "NetworkError"
	KindTimeout      Kind = "Timeout"
	KindCircuitOpen  Kind = "CircuitOpen"
)

// codeRanges maps each kind to its numeric code, per the §7 table.
var codeRanges = map[Kind]int{
	KindAdapterNotFound:       1000,
	KindAdapterNotInitialized: 1001,

	KindTransactionBuildFailed: 2000,
	KindInsufficientBalance:    2001,

	KindHTLCCreationFailed:     3000,
	KindHTLCTimelockExpired:    3001,
	KindHTLCTimelockNotExpired: 3002,

	KindNoRouteFound:   4000,
	KindQuoteExpired:   4001,
	KindInvalidIntent:  4002,
	KindNoPrivateRoute: 4003,

	KindSolverUnavailable:           5000,
	KindSolverInsufficientInventory: 5001,

	KindStealthAddressGenerationFailed: 6000,
	KindPrivacyHubUnavailable:          6001,

	KindNetworkError: 9000,
	KindTimeout:      9001,
	KindCircuitOpen:  9002,
}

// retryableKinds are the kinds §7 calls out as retryable: network, timeout,
// and transient adapter failures.
var retryableKinds = map[Kind]bool{
	KindNetworkError:           true,
	KindTimeout:                true,
	KindAdapterNotInitialized:  true,
	KindTransactionBuildFailed: true,
}

// recoverableKinds are errors with a defined recovery path. HTLCTimelockExpired
// is recoverable via the Refund Manager - it is, per spec §7, "actually the
// expected recovery path" rather than a failure.
var recoverableKinds = map[Kind]bool{
	KindHTLCTimelockExpired: true,
}

// SwapError is the concrete error type backing the §7 taxonomy: a kind,
// its numeric code, a human message, optional structured context, and
// recoverable/retryable flags derived from the kind.
type SwapError struct {
	Kind        Kind
	Code        int
	Message     string
	Context     map[string]string
	Remediation string
	SwapID      string

	cause error
}

// NewError builds a SwapError for kind with a formatted message.
func NewError(kind Kind, format string, args ...interface{}) *SwapError {
	return &SwapError{
		Kind:    kind,
		Code:    codeRanges[kind],
		Message: fmt.Sprintf(format, args...),
		Context: map[string]string{},
	}
}

// Wrap builds a SwapError for kind, wrapping an underlying cause so
// Unwrap/errors.Is/errors.As keep working.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *SwapError {
	e := NewError(kind, format, args...)
	e.cause = cause
	return e
}

// WithSwapID attaches a swap id to the error for correlation, per §7
// ("Errors always carry the swapId when available").
func (e *SwapError) WithSwapID(swapID string) *SwapError {
	e.SwapID = swapID
	return e
}

// WithContext attaches a key/value pair to the error's context map.
func (e *SwapError) WithContext(key, value string) *SwapError {
	if e.Context == nil {
		e.Context = map[string]string{}
	}
	e.Context[key] = value
	return e
}

// WithRemediation attaches a human remediation hint.
func (e *SwapError) WithRemediation(hint string) *SwapError {
	e.Remediation = hint
	return e
}

func (e *SwapError) Error() string {
	if e.SwapID != "" {
		return fmt.Sprintf("[%s %d] swap=%s: %s", e.Kind, e.Code, e.SwapID, e.Message)
	}
	return fmt.Sprintf("[%s %d] %s", e.Kind, e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *SwapError) Unwrap() error {
	return e.cause
}

// Retryable reports whether the error's kind is one §7 marks retryable
// (network/timeout/transient adapter failures).
func (e *SwapError) Retryable() bool {
	return retryableKinds[e.Kind]
}

// Recoverable reports whether the error's kind has a defined recovery
// path (currently: HTLCTimelockExpired, recoverable via the refund manager).
func (e *SwapError) Recoverable() bool {
	return recoverableKinds[e.Kind]
}

// KindOf extracts the Kind from err if it is (or wraps) a *SwapError.
func KindOf(err error) (Kind, bool) {
	var se *SwapError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}
