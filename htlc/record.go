// Package htlc drives the standard two-HTLC atomic swap state machine of
// spec §4.5: a single coordinator, owning one swap at a time per SwapID,
// stepping through source lock -> dest lock -> dest claim -> completion
// over a pair of chain adapters. The struct shape - a mutex-guarded map of
// the swaps in flight - follows the teacher's swapState
// (protocol/bob/swap_state.go); the pure DecideRecovery function follows
// the teacher's ProtocolExited/tryClaim/tryReclaimMonero fallback chain,
// and the coordinator does not run it itself when a swap exits.
package htlc

import "time"

// StepStatus is one ExecutionStep's lifecycle state, per spec §4.5 step 8.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepFailed     StepStatus = "failed"
)

// ExecutionStep is one named stage of the coordinator's state machine.
type ExecutionStep struct {
	Name      string
	Status    StepStatus
	StartedAt time.Time
	EndedAt   time.Time
	Err       error
}

// ExecutionRecord is the full audit trail of one standard atomic swap,
// returned alongside the swap's final types.AtomicSwapState.
type ExecutionRecord struct {
	SwapID   string
	Steps    []ExecutionStep
	TxHashes map[string]string // keyed by a step name, e.g. "LockingSource"
}

func newExecutionRecord(swapID string, stepNames []string) *ExecutionRecord {
	steps := make([]ExecutionStep, len(stepNames))
	for i, name := range stepNames {
		steps[i] = ExecutionStep{Name: name, Status: StepPending}
	}
	return &ExecutionRecord{
		SwapID:   swapID,
		Steps:    steps,
		TxHashes: make(map[string]string),
	}
}

func (r *ExecutionRecord) begin(name string, now time.Time) {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			r.Steps[i].Status = StepInProgress
			r.Steps[i].StartedAt = now
			return
		}
	}
}

func (r *ExecutionRecord) finish(name string, now time.Time, err error) {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			r.Steps[i].EndedAt = now
			if err != nil {
				r.Steps[i].Status = StepFailed
				r.Steps[i].Err = err
			} else {
				r.Steps[i].Status = StepCompleted
			}
			return
		}
	}
}
