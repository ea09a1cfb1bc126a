package audio

import "github.com/lixenwraith/machine-room/parameter"

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0, scales every cue
	SampleRate   int
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVol,
		SampleRate:   parameter.AudioSampleRate,
	}
}
