// Package game ties a grid and a word list into a playable session.
package game

// State represents the current session state.
type State int

const (
	// StateInProgress accepts placements.
	StateInProgress State = iota
	// StateEnded is terminal; no further placements are accepted.
	StateEnded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how an ended session finished.
type Outcome int

const (
	// OutcomeNone means the session has not ended.
	OutcomeNone Outcome = iota
	// OutcomeWin means every word was placed.
	OutcomeWin
	// OutcomeLost means no empty run is long enough for the shortest word left.
	OutcomeLost
)

// String returns the outcome as shown to the player.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "NONE"
	case OutcomeWin:
		return "WIN"
	case OutcomeLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}
