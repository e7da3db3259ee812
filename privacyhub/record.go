package privacyhub

import "time"

// PhaseStatus is one ExecutionPhase's lifecycle state, mirroring
// htlc.StepStatus (package htlc is the standard coordinator's equivalent)
// but kept as its own small type since the two coordinators' phase lists
// never interleave.
type PhaseStatus string

const (
	PhasePending    PhaseStatus = "pending"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
	PhaseFailed     PhaseStatus = "failed"
)

// ExecutionPhase is one named stage of the Privacy Hub state machine.
type ExecutionPhase struct {
	Name      string
	Status    PhaseStatus
	StartedAt time.Time
	EndedAt   time.Time
	Err       error
}

// ExecutionRecord is the full audit trail of one Privacy Hub swap.
type ExecutionRecord struct {
	SwapID   string
	Phases   []ExecutionPhase
	TxHashes map[string]string
}

func newExecutionRecord(swapID string, phaseNames []string) *ExecutionRecord {
	phases := make([]ExecutionPhase, len(phaseNames))
	for i, name := range phaseNames {
		phases[i] = ExecutionPhase{Name: name, Status: PhasePending}
	}
	return &ExecutionRecord{
		SwapID:   swapID,
		Phases:   phases,
		TxHashes: make(map[string]string),
	}
}

func (r *ExecutionRecord) begin(name string, now time.Time) {
	for i := range r.Phases {
		if r.Phases[i].Name == name {
			r.Phases[i].Status = PhaseInProgress
			r.Phases[i].StartedAt = now
			return
		}
	}
}

func (r *ExecutionRecord) finish(name string, now time.Time, err error) {
	for i := range r.Phases {
		if r.Phases[i].Name == name {
			r.Phases[i].EndedAt = now
			if err != nil {
				r.Phases[i].Status = PhaseFailed
				r.Phases[i].Err = err
			} else {
				r.Phases[i].Status = PhaseCompleted
			}
			return
		}
	}
}
