package system

import (
	"time"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
)

// scriptedRand replays fixed values, then returns zeros
type scriptedRand struct {
	floats []float64
	ints   []int

	floatCalls int
	intCalls   int
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type playedCue struct {
	sound  core.SoundType
	volume float64
}

type fakeAudio struct {
	played []playedCue
	muted  bool
}

func (a *fakeAudio) Play(st core.SoundType, volume float64) bool {
	a.played = append(a.played, playedCue{sound: st, volume: volume})
	return !a.muted
}

func (a *fakeAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *fakeAudio) IsMuted() bool {
	return a.muted
}

func (a *fakeAudio) count(st core.SoundType) int {
	n := 0
	for _, c := range a.played {
		if c.sound == st {
			n++
		}
	}
	return n
}

type harness struct {
	world *engine.World
	audio *fakeAudio
	now   time.Duration
}

func newHarness(rng engine.Rand) *harness {
	world := engine.NewWorld(nil, nil, rng)
	RegisterAll(world)
	audio := &fakeAudio{}
	world.Resources.Audio = audio
	return &harness{world: world, audio: audio}
}

func (h *harness) res() *engine.Resources {
	return h.world.Resources
}

// step advances the clock by d and runs one tick with controls
func (h *harness) step(d time.Duration, controls engine.Controls) {
	h.now += d
	h.world.Resources.Controls = controls
	h.world.Update(core.Clock{Now: h.now, Delta: d})
}

// idleUntil ticks with no input until now reaches t
func (h *harness) idleUntil(t, tick time.Duration) {
	for h.now+tick <= t {
		h.step(tick, engine.Controls{})
	}
}

func (h *harness) place(x, z float64) {
	h.world.Resources.Player.Pose.X = x
	h.world.Resources.Player.Pose.Z = z
}

const testTick = 33 * time.Millisecond

// Positions on the default floor plan
const (
	aisleX, aisleZ       = -5.0, -10.0 // Center aisle
	corridorX, corridorZ = -5.0, 0.0
)
