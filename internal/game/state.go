// Package game provides the simulation loop and match state management.
package game

// State represents the current game state.
type State int

const (
	// StateStart is the title screen shown before the first match.
	StateStart State = iota
	// StatePlaying is a match in progress; only this state advances the simulation.
	StatePlaying
	// StateOver is a finished match waiting for replay.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
