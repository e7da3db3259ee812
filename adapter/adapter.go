// Package adapter defines the chain adapter capability surface the swap
// core consumes (spec §6). Per-chain implementations - transaction
// building, signing, broadcasting, balance queries - are external
// collaborators and excluded from this module; only the interface and a
// small registry for looking implementations up by chain live here,
// mirroring how the teacher treats `net.MessageSender` and
// `monero.Client` as interfaces implemented elsewhere and merely consumed
// by the protocol state machines.
package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/secret"
)

// Config is the per-chain connection configuration passed to Initialize.
type Config struct {
	RPCURL       string
	FallbackURLs []string
}

// TxParams describes an unsigned, chain-agnostic transaction build
// request.
type TxParams struct {
	From   string
	To     string
	Amount common.Amount
	Memo   string
}

// UnsignedTx is an opaque, adapter-produced unsigned transaction blob.
type UnsignedTx struct {
	Chain common.Chain
	Data  []byte
}

// SignedTx is an opaque, adapter-produced signed transaction blob.
type SignedTx struct {
	Chain common.Chain
	Data  []byte
}

// HTLCParams describes an HTLC construction request, shared by both the
// standard and Privacy Hub coordinators.
type HTLCParams struct {
	Sender   string
	Receiver string
	Amount   common.Amount
	Hashlock secret.Hashlock
	Timelock int64 // unix seconds
}

// HTLCStatusReport is what getHTLCStatus returns.
type HTLCStatusReport struct {
	ID           string
	State        string
	TxHash       string
	ClaimTxHash  string
	RefundTxHash string
	Amount       common.Amount
	Timelock     int64
}

// SubscriptionHandle cancels an address subscription.
type SubscriptionHandle interface {
	Unsubscribe()
}

// ChainAdapter is the capability surface §6 requires of every per-chain
// implementation. The swap core never constructs one directly; it only
// looks one up from a Registry by Chain.
type ChainAdapter interface {
	Initialize(ctx context.Context, cfg Config) error

	GetAddress(publicKey []byte) (string, error)
	GetBalance(ctx context.Context, address string, asset *common.Asset) (common.Amount, error)

	BuildTransaction(ctx context.Context, params TxParams) (UnsignedTx, error)
	SignTransaction(ctx context.Context, tx UnsignedTx, privateKey []byte) (SignedTx, error)
	BroadcastTransaction(ctx context.Context, tx SignedTx) (txHash string, err error)

	CreateHTLC(ctx context.Context, params HTLCParams) (UnsignedTx, error)
	ClaimHTLC(ctx context.Context, htlcID string, preimage []byte) (UnsignedTx, error)
	RefundHTLC(ctx context.Context, htlcID string) (UnsignedTx, error)
	GetHTLCStatus(ctx context.Context, htlcID string) (HTLCStatusReport, error)

	WaitForConfirmation(ctx context.Context, txHash string) error
	SubscribeToAddress(ctx context.Context, address string, cb func(event interface{})) (SubscriptionHandle, error)
}

// Registry is the process-scoped, read-mostly lookup from Chain to
// ChainAdapter. Registration only happens during initialization; reads
// are safe for concurrent use from every swap's goroutine, per spec §5.
type Registry struct {
	mu       sync.RWMutex
	adapters map[common.Chain]ChainAdapter
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[common.Chain]ChainAdapter)}
}

// Register installs adapter for chain. Intended to be called only during
// process initialization, before any swap starts.
func (r *Registry) Register(chain common.Chain, a ChainAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[chain] = a
}

// Get looks up the adapter for chain.
func (r *Registry) Get(chain common.Chain) (ChainAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[chain]
	if !ok {
		return nil, common.NewError(common.KindAdapterNotFound, "no adapter registered for chain %s", chain).
			WithContext("chain", string(chain))
	}
	return a, nil
}

// MustGet is Get, panicking on failure. Intended for call sites that have
// already validated the chain is registered (e.g. right after building
// the Registry in a test or a wiring-time assembly function).
func (r *Registry) MustGet(chain common.Chain) ChainAdapter {
	a, err := r.Get(chain)
	if err != nil {
		panic(fmt.Sprintf("adapter.MustGet: %s", err))
	}
	return a
}

// Chains returns every chain with a registered adapter.
func (r *Registry) Chains() []common.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chains := make([]common.Chain, 0, len(r.adapters))
	for c := range r.adapters {
		chains = append(chains, c)
	}
	return chains
}
