package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/space"
	"github.com/lixenwraith/machine-room/status"
)

// World owns the session resources and the ordered system list
type World struct {
	Resources *Resources

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with a fresh session
// plan, tuning and rng may be nil to use defaults
func NewWorld(plan *space.FloorPlan, tuning *Tuning, rng Rand) *World {
	if plan == nil {
		plan = space.DefaultFloorPlan()
	}
	if tuning == nil {
		tuning = DefaultTuning()
	}
	if rng == nil {
		rng = NewRand(0)
	}

	w := &World{
		Resources: &Resources{
			Plan:   plan,
			Tuning: tuning,
			Rand:   rng,
			Status: status.NewRegistry(),
		},
	}
	w.resetSession()
	return w
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the systems in execution order
func (w *World) Systems() []System {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one tick: every system in priority order, each to completion
func (w *World) Update(clock core.Clock) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	if w.Resources.Session.Over {
		return
	}

	w.Resources.Clock = clock
	for _, s := range w.systems {
		s.Update()
	}
}

// Reset restores session state and re-initialises every system
func (w *World) Reset() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.resetSession()
	for _, s := range w.systems {
		s.Init()
	}
}

func (w *World) resetSession() {
	r := w.Resources
	r.Clock = core.Clock{}
	r.Controls = Controls{}
	r.Player = PlayerResource{
		Pose: core.Pose{X: parameter.PlayerStartX, Y: parameter.PlayerEyeHeight, Z: parameter.PlayerStartZ},
	}
	r.Visibility = Visibility{}
	r.Progress = Progress{}
	r.Points.Reset()
	r.Encounter = Encounter{}
	r.Session = Session{}
	r.HUD = HUD{LightIntensity: parameter.LightIntensityOn}
}

// WithWorldLock runs fn while no tick is in progress
// Used by observers that read resources from another goroutine
func (w *World) WithWorldLock(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
