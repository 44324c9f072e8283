package core

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventAteApple  EventKind = "apple"
	EventAteRotten EventKind = "rotten"
	EventRunEnded  EventKind = "run_ended"
)

// End reasons reported with EventRunEnded.
const (
	EndSelf    = "self"
	EndBrick   = "brick"
	EndRestart = "restart"
	EndQuit    = "quit"
)

// RunSummary describes a finished run, from reset to reset.
type RunSummary struct {
	Score     int
	MaxLength int
	Apples    int
	Rotten    int
	Ticks     uint64
	Reason    string
}

// Event is emitted by Step. Run is only set for EventRunEnded.
type Event struct {
	Kind EventKind
	Run  RunSummary
}

// HasEvent reports whether the result contains an event of the given kind.
func (r StepResult) HasEvent(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
