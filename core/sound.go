package core

// SoundType represents the cues the simulation can request
type SoundType int

const (
	SoundWarning SoundType = iota // Antagonist approaching
	SoundScare                    // Jump-scare payload
	SoundBoot                     // Computer unlocked
	SoundTypeCount
)

// String returns the cue name used in logs and snapshots
func (s SoundType) String() string {
	switch s {
	case SoundWarning:
		return "warning"
	case SoundScare:
		return "scare"
	case SoundBoot:
		return "boot"
	default:
		return "unknown"
	}
}
