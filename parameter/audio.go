package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue volumes (0.0-1.0, before master volume)
const (
	VolumeWarning = 0.65
	VolumeScare   = 0.9
	VolumeBoot    = 0.2
)

// Cue shapes
const (
	WarningDuration  = 1800 * time.Millisecond
	WarningBaseFreq  = 55.0
	ScareDuration    = 1200 * time.Millisecond
	BootDuration     = 350 * time.Millisecond
	BootFreqLow      = 660.0
	BootFreqHigh     = 990.0
	DefaultMasterVol = 0.8
)
