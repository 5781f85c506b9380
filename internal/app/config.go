package app

import "time"

// DefaultFrameDelay is the pause between automatically played snapshots.
const DefaultFrameDelay = 500 * time.Millisecond

// Config holds playback configuration options.
type Config struct {
	// FrameDelay is the time between snapshots while playing.
	// A zero delay means DefaultFrameDelay.
	FrameDelay time.Duration
}

// frameDelay returns the configured delay, falling back to the default.
func (c Config) frameDelay() time.Duration {
	if c.FrameDelay <= 0 {
		return DefaultFrameDelay
	}
	return c.FrameDelay
}
