package game

// EventKind tags what a turn event reports.
type EventKind int

const (
	// EventPhaseChanged reports entry into a new phase.
	EventPhaseChanged EventKind = iota
	// EventRoundStarted reports the start of a new round.
	EventRoundStarted
	// EventMessage carries a gameplay log line.
	EventMessage
)

// String returns the event kind identifier.
func (k EventKind) String() string {
	switch k {
	case EventPhaseChanged:
		return "phase_changed"
	case EventRoundStarted:
		return "round_started"
	case EventMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Event is one notable thing the turn machine did. Events accumulate on the
// TurnManager until the caller collects them with TakeEvents.
type Event struct {
	Kind    EventKind
	Phase   Phase
	Round   int
	Message string
}
