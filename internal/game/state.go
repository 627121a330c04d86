// Package game provides the session state, input mapping and the main game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default mode: the player moves and enemies act each turn.
	StatePlaying State = iota
	// StateQuit means the player asked to leave; the loop stops.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
