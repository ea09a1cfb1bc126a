package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// SpawnSystem unlocks computers on a randomized interval that grows with the
// number already unlocked
type SpawnSystem struct {
	world *engine.World

	statSpawned  *atomic.Int64
	statUnlocked *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:        world,
		statSpawned:  world.Resources.Status.Ints.Get("points.spawned"),
		statUnlocked: world.Resources.Status.Ints.Get("points.unlocked"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpawnSystem) Init() {
	s.world.Resources.Points.Reset()
	s.statUnlocked.Store(0)
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update unlocks at most one computer per tick
func (s *SpawnSystem) Update() {
	r := s.world.Resources
	points := &r.Points
	universe := r.Plan.Grid.Count
	defer func() { s.statUnlocked.Store(int64(points.Len())) }()

	if universe <= 0 || points.Len() >= universe {
		return
	}

	tuning := r.Tuning.Spawn
	if !points.Scheduled {
		points.Jitter = time.Duration(r.Rand.Float64() * float64(tuning.Jitter))
		points.Scheduled = true
	}
	// Interval tracks the live set size so a consume shortens the wait
	points.NextSpawnAt = points.LastSpawn + tuning.BaseInterval +
		time.Duration(points.Len())*tuning.PerUnlocked + points.Jitter

	now := r.Clock.Now
	if now <= points.NextSpawnAt {
		return
	}

	id, ok := points.Probe(r.Rand.IntN(universe), universe)
	if !ok {
		return
	}
	points.Insert(id)
	points.LastSpawn = now
	points.Scheduled = false
	s.statSpawned.Add(1)

	playCue(r, core.SoundBoot, r.Tuning.Volume.Boot)
	log.Printf("spawn: computer %d unlocked at %v (%d open)", id, now, points.Len())
}
