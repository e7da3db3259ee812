package refundmanager

import (
	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// RefundStatus is one RefundEntry's lifecycle state within the manager.
type RefundStatus string

const (
	RefundPending    RefundStatus = "pending"
	RefundProcessing RefundStatus = "processing"
	RefundCompleted  RefundStatus = "completed"
	RefundFailed     RefundStatus = "failed"
)

// RefundEntry is a weak reference to one locked HTLC the manager watches,
// per spec §4.8/§6. It carries no secret material - only what's needed to
// call refundHTLC once the timelock has passed.
type RefundEntry struct {
	SwapID        string
	HTLCID        string
	Chain         common.Chain
	Timelock      int64 // unix seconds
	Amount        common.Amount
	RefundAddress string

	Status   RefundStatus
	Attempts int
}

// eligible reports whether e's timelock (plus buffer) has passed as of now.
func (e RefundEntry) eligible(nowUnix int64, bufferSeconds int64) bool {
	return nowUnix >= e.Timelock+bufferSeconds
}

// RefundRecord is one completed attempt to refund an entry, appended to
// refundHistory regardless of outcome (spec §4.8).
type RefundRecord struct {
	HTLCID             string
	Chain              common.Chain
	Success            bool
	TxHash             string
	Error              string
	TimestampUnixMilli int64
}

// Stats summarizes the manager's queue and history, per spec §4.8.
type Stats struct {
	Pending       int
	Processing    int
	Completed     int
	Failed        int
	TotalAttempts int
	SuccessRate   float64
}

// persistedEntry is RefundEntry's exportState/importState wire shape:
// amounts are decimal strings (plus their precision) so the export is
// portable across processes without re-deriving asset metadata, per
// spec §6 "Persisted state".
type persistedEntry struct {
	SwapID        string `json:"swapId"`
	HTLCID        string `json:"htlcId"`
	Chain         string `json:"chain"`
	Timelock      int64  `json:"timelock"`
	Amount        string `json:"amount"`
	Decimals      uint8  `json:"decimals"`
	RefundAddress string `json:"refundAddress"`
	Status        string `json:"status"`
	Attempts      int    `json:"attempts"`
}

func toPersistedEntry(e RefundEntry) persistedEntry {
	return persistedEntry{
		SwapID:        e.SwapID,
		HTLCID:        e.HTLCID,
		Chain:         string(e.Chain),
		Timelock:      e.Timelock,
		Amount:        e.Amount.String(),
		Decimals:      e.Amount.Decimals(),
		RefundAddress: e.RefundAddress,
		Status:        string(e.Status),
		Attempts:      e.Attempts,
	}
}

func fromPersistedEntry(p persistedEntry) (RefundEntry, error) {
	units, err := common.ParseAmount(p.Amount, p.Decimals)
	if err != nil {
		return RefundEntry{}, err
	}
	return RefundEntry{
		SwapID:        p.SwapID,
		HTLCID:        p.HTLCID,
		Chain:         common.Chain(p.Chain),
		Timelock:      p.Timelock,
		Amount:        common.NewAmount(units, p.Decimals),
		RefundAddress: p.RefundAddress,
		Status:        RefundStatus(p.Status),
		Attempts:      p.Attempts,
	}, nil
}

// persistedRecord is RefundRecord's wire shape; fields already serialize
// cleanly so no translation is needed beyond struct tags.
type persistedRecord struct {
	HTLCID             string `json:"htlcId"`
	Chain              string `json:"chain"`
	Success            bool   `json:"success"`
	TxHash             string `json:"txHash,omitempty"`
	Error              string `json:"error,omitempty"`
	TimestampUnixMilli int64  `json:"timestamp"`
}

func toPersistedRecord(r RefundRecord) persistedRecord {
	return persistedRecord{
		HTLCID:             r.HTLCID,
		Chain:              string(r.Chain),
		Success:            r.Success,
		TxHash:             r.TxHash,
		Error:              r.Error,
		TimestampUnixMilli: r.TimestampUnixMilli,
	}
}

func fromPersistedRecord(p persistedRecord) RefundRecord {
	return RefundRecord{
		HTLCID:             p.HTLCID,
		Chain:              common.Chain(p.Chain),
		Success:            p.Success,
		TxHash:             p.TxHash,
		Error:              p.Error,
		TimestampUnixMilli: p.TimestampUnixMilli,
	}
}

// State is the exportState()/importState() wire format: {pendingRefunds,
// refundHistory}, per spec §6.
type State struct {
	PendingRefunds []persistedEntry  `json:"pendingRefunds"`
	RefundHistory  []persistedRecord `json:"refundHistory"`
}
