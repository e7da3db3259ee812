// Package testchain provides an in-memory ChainAdapter fixture shared by
// the coordinator and refund-manager test suites, mirroring the
// teacher's shared tests package (tests/integration_test.go): one
// reusable fake per external dependency instead of ad hoc mocks scattered
// across each test file.
package testchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/Leihyn/omniswap-sdk-sub001/adapter"
	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// Adapter is a deterministic, in-memory adapter.ChainAdapter. Every
// broadcast transaction hash is "<chain>-txN", where N comes from a
// per-adapter counter that CreateHTLC also advances for its pending
// placeholders, so tests can assert on exact values.
type Adapter struct {
	Chain common.Chain

	mu            sync.Mutex
	initialized   bool
	nextTxNum     int
	htlcs         map[string]*adapter.HTLCStatusReport
	pendingHTLCs  map[string]adapter.HTLCParams // keyed by the UnsignedTx.Data placeholder
	balances      map[string]common.Amount
	confirmErr    error
	createErr     error
	broadcastErr  error
	confirmations map[string]int
}

// New returns a fresh Adapter for chain with no balances or HTLCs.
func New(chain common.Chain) *Adapter {
	return &Adapter{
		Chain:         chain,
		htlcs:         make(map[string]*adapter.HTLCStatusReport),
		pendingHTLCs:  make(map[string]adapter.HTLCParams),
		balances:      make(map[string]common.Amount),
		confirmations: make(map[string]int),
	}
}

// FailCreate makes every subsequent CreateHTLC call return err.
func (a *Adapter) FailCreate(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.createErr = err
}

// FailBroadcast makes every subsequent BroadcastTransaction call return err.
func (a *Adapter) FailBroadcast(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.broadcastErr = err
}

// FailConfirmation makes every subsequent WaitForConfirmation call return err.
func (a *Adapter) FailConfirmation(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.confirmErr = err
}

func (a *Adapter) Initialize(_ context.Context, _ adapter.Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initialized = true
	return nil
}

func (a *Adapter) GetAddress(publicKey []byte) (string, error) {
	return fmt.Sprintf("%s-addr-%x", a.Chain, publicKey), nil
}

func (a *Adapter) GetBalance(_ context.Context, address string, _ *common.Asset) (common.Amount, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	bal, ok := a.balances[address]
	if !ok {
		return common.ZeroAmount(8), nil
	}
	return bal, nil
}

// SetBalance seeds address's balance for subsequent GetBalance calls.
func (a *Adapter) SetBalance(address string, amount common.Amount) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balances[address] = amount
}

func (a *Adapter) BuildTransaction(_ context.Context, params adapter.TxParams) (adapter.UnsignedTx, error) {
	return adapter.UnsignedTx{Chain: a.Chain, Data: []byte(params.To)}, nil
}

func (a *Adapter) SignTransaction(_ context.Context, tx adapter.UnsignedTx, _ []byte) (adapter.SignedTx, error) {
	return adapter.SignedTx{Chain: tx.Chain, Data: tx.Data}, nil
}

func (a *Adapter) BroadcastTransaction(_ context.Context, tx adapter.SignedTx) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.broadcastErr != nil {
		return "", a.broadcastErr
	}
	a.nextTxNum++
	txHash := fmt.Sprintf("%s-tx%d", a.Chain, a.nextTxNum)

	placeholder := string(tx.Data)
	if params, ok := a.pendingHTLCs[placeholder]; ok {
		delete(a.pendingHTLCs, placeholder)
		a.htlcs[txHash] = &adapter.HTLCStatusReport{
			ID:       txHash,
			State:    "locked",
			Amount:   params.Amount,
			Timelock: params.Timelock,
		}
	}
	return txHash, nil
}

func (a *Adapter) CreateHTLC(_ context.Context, params adapter.HTLCParams) (adapter.UnsignedTx, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.createErr != nil {
		return adapter.UnsignedTx{}, a.createErr
	}
	a.nextTxNum++
	placeholder := fmt.Sprintf("%s-pending%d", a.Chain, a.nextTxNum)
	a.pendingHTLCs[placeholder] = params
	return adapter.UnsignedTx{Chain: a.Chain, Data: []byte(placeholder)}, nil
}

func (a *Adapter) ClaimHTLC(_ context.Context, htlcID string, _ []byte) (adapter.UnsignedTx, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	report, ok := a.htlcs[htlcID]
	if !ok {
		return adapter.UnsignedTx{}, common.NewError(common.KindHTLCCreationFailed, "unknown htlc id %s", htlcID)
	}
	report.State = "claimed"
	return adapter.UnsignedTx{Chain: a.Chain, Data: []byte("claim:" + htlcID)}, nil
}

func (a *Adapter) RefundHTLC(_ context.Context, htlcID string) (adapter.UnsignedTx, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	report, ok := a.htlcs[htlcID]
	if !ok {
		return adapter.UnsignedTx{}, common.NewError(common.KindHTLCCreationFailed, "unknown htlc id %s", htlcID)
	}
	report.State = "refunded"
	return adapter.UnsignedTx{Chain: a.Chain, Data: []byte("refund:" + htlcID)}, nil
}

func (a *Adapter) GetHTLCStatus(_ context.Context, htlcID string) (adapter.HTLCStatusReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	report, ok := a.htlcs[htlcID]
	if !ok {
		return adapter.HTLCStatusReport{}, common.NewError(common.KindHTLCCreationFailed, "unknown htlc id %s", htlcID)
	}
	return *report, nil
}

func (a *Adapter) WaitForConfirmation(_ context.Context, txHash string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.confirmErr != nil {
		return a.confirmErr
	}
	a.confirmations[txHash]++
	return nil
}

func (a *Adapter) SubscribeToAddress(_ context.Context, _ string, _ func(event interface{})) (adapter.SubscriptionHandle, error) {
	return noopSubscription{}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

var _ adapter.ChainAdapter = (*Adapter)(nil)
