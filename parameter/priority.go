package parameter

// System Execution Priorities (lower runs first)
// The order is part of the simulation contract: a consume and the progress-scaled
// reschedule it influences must resolve in this sequence within one tick
const (
	PriorityMovement   = 10
	PriorityVisibility = 20 // After movement, sees the settled pose
	PrioritySpawn      = 30
	PriorityUse        = 40 // After spawn, a point unlocked this tick is consumable
	PriorityEncounter  = 50 // After use, reads the updated progress
	PriorityHUD        = 60 // After all game logic
)
