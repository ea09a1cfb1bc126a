package parameter

import "time"

// Player movement
const (
	PlayerSpeed     = 2.5 // Units per second
	PlayerEyeHeight = 1.2
	PlayerStartX    = 0.0
	PlayerStartZ    = 0.0

	// Input vectors shorter than this are treated as no movement
	MoveEpsilon = 1e-6
)

// Terminal key hold emulation
// Terminals report presses and autorepeats but no releases, so a key counts as
// held until no event for it arrived within the window
const (
	ActionHoldWindow = 550 * time.Millisecond // Covers the initial autorepeat delay
	MoveHoldWindow   = 120 * time.Millisecond
)
