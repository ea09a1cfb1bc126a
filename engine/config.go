package engine

import (
	"time"

	"github.com/lixenwraith/machine-room/parameter"
)

// Tuning holds the scheduler and movement constants of a session
type Tuning struct {
	Encounter EncounterTuning
	Spawn     SpawnTuning
	Move      MoveTuning
	Volume    VolumeTuning

	MaxProgress int
}

// EncounterTuning parameterises the antagonist schedule
type EncounterTuning struct {
	InitialDelay     time.Duration
	InitialJitter    time.Duration
	WarningLead      time.Duration
	WarningScale     float64 // K: seconds of extra lead at zero progress
	RescheduleFloor  time.Duration
	RescheduleJitter time.Duration
	DisplayDuration  time.Duration
	FatalScare       bool // Session ends when the overlay auto-dismisses
}

// SpawnTuning parameterises the unlock schedule
type SpawnTuning struct {
	BaseInterval time.Duration
	PerUnlocked  time.Duration
	Jitter       time.Duration
}

// MoveTuning parameterises player translation
type MoveTuning struct {
	Speed float64 // Units per second
}

// VolumeTuning holds per-cue volumes
type VolumeTuning struct {
	Warning float64
	Scare   float64
	Boot    float64
}

// DefaultTuning returns the stock values
func DefaultTuning() *Tuning {
	return &Tuning{
		Encounter: EncounterTuning{
			InitialDelay:     parameter.EncounterInitialDelay,
			InitialJitter:    parameter.EncounterInitialJitter,
			WarningLead:      parameter.EncounterWarningLead,
			WarningScale:     parameter.EncounterWarningScale,
			RescheduleFloor:  parameter.EncounterRescheduleFloor,
			RescheduleJitter: parameter.EncounterRescheduleJitter,
			DisplayDuration:  parameter.EncounterDisplayDuration,
		},
		Spawn: SpawnTuning{
			BaseInterval: parameter.SpawnBaseInterval,
			PerUnlocked:  parameter.SpawnPerUnlocked,
			Jitter:       parameter.SpawnJitter,
		},
		Move: MoveTuning{
			Speed: parameter.PlayerSpeed,
		},
		Volume: VolumeTuning{
			Warning: parameter.VolumeWarning,
			Scare:   parameter.VolumeScare,
			Boot:    parameter.VolumeBoot,
		},
		MaxProgress: parameter.MaxProgress,
	}
}
