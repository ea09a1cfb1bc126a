package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the simulation and render interval (~30 FPS)
	TickInterval = 33 * time.Millisecond

	// MaxTickDelta caps the delta handed to systems after a stall
	MaxTickDelta = 250 * time.Millisecond

	// SnapshotInterval throttles spectator broadcasts
	SnapshotInterval = 100 * time.Millisecond
)
