package types

import (
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/crypto/secret"
)

// HTLCState is the on-chain lifecycle of a single HTLC, per spec §3.
type HTLCState string

const (
	HTLCPending  HTLCState = "pending"
	HTLCLocked   HTLCState = "locked"
	HTLCClaimed  HTLCState = "claimed"
	HTLCRefunded HTLCState = "refunded"
	HTLCExpired  HTLCState = "expired"
)

// HTLCStatus mirrors the state of one HTLC on one chain.
type HTLCStatus struct {
	ID    string
	State HTLCState

	TxHash       string
	ClaimTxHash  string
	RefundTxHash string

	Amount   common.Amount
	Hashlock secret.Hashlock
	Timelock int64 // unix seconds
}

// AtomicSwapStatus is the standard two-HTLC swap's overall status, per
// spec §3/§4.5.
type AtomicSwapStatus string

const (
	AtomicSwapPending   AtomicSwapStatus = "pending"
	AtomicSwapCompleted AtomicSwapStatus = "completed"
	AtomicSwapRefunded  AtomicSwapStatus = "refunded"
	AtomicSwapFailed    AtomicSwapStatus = "failed"
)

// AtomicSwapState is the standard atomic swap's state, per spec §3. Both
// HTLCs share one hashlock/secret: that equality is the cross-chain
// atomicity invariant (spec §8 property 1).
type AtomicSwapState struct {
	SwapID string

	Secret   secret.Secret
	Hashlock secret.Hashlock

	SourceHTLC HTLCStatus
	DestHTLC   HTLCStatus

	Status AtomicSwapStatus
}

// PrivacyHubStatus is the Privacy Hub swap's overall status, per spec
// §3/§4.6.
type PrivacyHubStatus string

const (
	HubPending     PrivacyHubStatus = "pending"
	HubSourceLocked PrivacyHubStatus = "source_locked"
	HubMixing      PrivacyHubStatus = "hub_mixing"
	HubDestLocked  PrivacyHubStatus = "dest_locked"
	HubCompleted   PrivacyHubStatus = "completed"
	HubRefunded    PrivacyHubStatus = "refunded"
	HubFailed      PrivacyHubStatus = "failed"
)

// StealthAddress is a one-time recipient address unlinkable to its base
// address, per spec §3/Glossary.
type StealthAddress struct {
	Chain              common.Chain
	Address            string
	ViewingKey         string
	SpendingKeyHash    string
	EphemeralPublicKey string
	CreatedAt          time.Time
}

// PrivacyFlags records what correlation-resistance properties a completed
// Privacy Hub swap actually achieved, per spec §4.6.
type PrivacyFlags struct {
	CorrelationBroken  bool
	TimingDecorrelated bool
	AddressesOneTime   bool
}

// DecoyTransaction is one dummy shielded deposit/withdrawal scheduled
// during hub mixing to inflate the anonymity set (spec §4.6 "Optional
// decoy transactions"). CorrelationTag is an internal bookkeeping id (not
// observable on-chain) used to match a decoy's deposit and withdrawal
// legs in logs and tests.
type DecoyTransaction struct {
	Chain          common.Chain
	Kind           string // "deposit" or "withdrawal"
	ScheduledAt    time.Time
	CorrelationTag string
}

// PrivacyHubSwapState is the Privacy Hub's two-secret state, per spec §3/§4.6.
// Invariant: SourceHashlock != DestHashlock (spec §8 property 2) -
// structurally, the two halves of the swap are cryptographically
// unlinkable on-chain.
type PrivacyHubSwapState struct {
	SwapID string

	SourceSecret secret.Secret
	DestSecret   secret.Secret

	SourceHashlock secret.Hashlock
	DestHashlock   secret.Hashlock

	SourceHTLC HTLCStatus
	DestHTLC   HTLCStatus

	HubDepositTx  string
	HubWithdrawTx string

	HubMixingStarted   time.Time
	HubMixingCompleted time.Time

	UserStealthAddress   StealthAddress
	SolverStealthAddress StealthAddress

	SourceTimelock    int64 // unix seconds
	DestTimelock      int64 // unix seconds
	RandomDelay       time.Duration
	ScheduledDestLock time.Time

	DecoyTransactions []DecoyTransaction

	Status PrivacyHubStatus
	Flags  PrivacyFlags
}
