package domain

// State is a phase of an orchestrated run.
type State int

const (
	// StateTypeChecking runs the type checker.
	StateTypeChecking State = iota
	// StatePreInvalidating reads the change set and clears stale caches.
	StatePreInvalidating
	// StateTesting runs the test runner over the derived test files.
	StateTesting
	// StatePostInvalidating clears the same caches again.
	StatePostInvalidating
	// StateDone is terminal.
	StateDone
)

var stateNames = [...]string{
	StateTypeChecking:     "type-checking",
	StatePreInvalidating:  "pre-invalidating",
	StateTesting:          "testing",
	StatePostInvalidating: "post-invalidating",
	StateDone:             "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
