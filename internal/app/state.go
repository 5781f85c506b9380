// Package app provides the snapshot playback loop and its state.
package app

// State represents the current playback state.
type State int

const (
	// StatePlaying advances one snapshot per frame tick.
	StatePlaying State = iota
	// StatePaused holds the current snapshot; arrow keys step manually.
	StatePaused
	// StateFinished means the last snapshot has been shown.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
