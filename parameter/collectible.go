package parameter

import "time"

// Computer grid layout
// Ids are laid out row-major; the column picks depth along the aisle and
// columns at or past ComputerLateralThreshold sit on the far side of a pillar
const (
	ComputerCount            = 32
	ComputersPerRow          = 8
	ComputerLateralThreshold = 4

	ComputerOriginX      = 0.2
	ComputerOriginZ      = -7.5
	ComputerRowPitch     = 3.9
	ComputerColumnPitch  = 1.9
	ComputerLateralShift = 0.3

	// Reach window in front of the anchor
	ComputerTriggerWidth = 0.35
	ComputerTriggerDepth = 1.8
)

// MaxProgress is the number of codes that completes the assignment
// Rate formulas clamp progress to this value
const MaxProgress = 10

// Unlock schedule: interval = base + per-unlocked * len(unlocked) + U(0, jitter)
const (
	SpawnBaseInterval = 6 * time.Second
	SpawnPerUnlocked  = 1 * time.Second
	SpawnJitter       = 6 * time.Second
)
