package parameter

import "time"

// Encounter schedule
const (
	// First trigger at InitialDelay + U(0, InitialJitter)
	EncounterInitialDelay  = 15 * time.Second
	EncounterInitialJitter = 10 * time.Second

	// Warning lead = WarningLead + WarningScale / (progress + 1) seconds
	EncounterWarningLead  = 1 * time.Second
	EncounterWarningScale = 3.0

	// Reschedule = Floor + MaxProgress / (progress + 1) seconds + U(0, Jitter)
	EncounterRescheduleFloor  = 5 * time.Second
	EncounterRescheduleJitter = 10 * time.Second

	// Overlay stays up this long before auto-dismiss
	EncounterDisplayDuration = 3500 * time.Millisecond
)
