package system

import (
	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
)

// playCue requests a sound if an audio player is attached
func playCue(r *engine.Resources, st core.SoundType, volume float64) bool {
	if r.Audio == nil {
		return false
	}
	return r.Audio.Play(st, volume)
}
