package domain

// Phase is the removal phase of a task held in memory.
// A task moves PhaseActive -> PhasePendingRemoval -> removed.
type Phase int

const (
	PhaseActive         Phase = iota // Listed normally
	PhasePendingRemoval              // Scheduled for deletion, still listed and persisted
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePendingRemoval:
		return "pending-removal"
	default:
		return "unknown"
	}
}
