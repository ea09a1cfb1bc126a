package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/space"
	"github.com/lixenwraith/machine-room/status"
)

// MovementSystem translates the player from the tick's move vector
// Hidden players are frozen; out-of-bounds axes are rolled back individually
type MovementSystem struct {
	world *engine.World

	statRollbacks *atomic.Int64
	statDistance  *status.AtomicFloat
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world:         world,
		statRollbacks: world.Resources.Status.Ints.Get("movement.rollbacks"),
		statDistance:  world.Resources.Status.Floats.Get("movement.distance"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *MovementSystem) Init() {}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update applies one tick of movement
func (s *MovementSystem) Update() {
	r := s.world.Resources
	player := &r.Player
	player.Suppressed = false
	player.RolledBack = false

	if r.Visibility.Hidden {
		player.Suppressed = true
		return
	}

	dx, dz := r.Controls.MoveX, r.Controls.MoveZ
	length := math.Hypot(dx, dz)
	if length < parameter.MoveEpsilon {
		return
	}

	step := r.Tuning.Move.Speed * r.Clock.Delta.Seconds()
	if step <= 0 {
		return
	}
	dx = dx / length * step
	dz = dz / length * step

	from := player.Pose
	next, rolledBack := ResolveMove(r.Plan, from, from.Translated(dx, dz))
	next.Yaw = math.Atan2(dx, -dz)

	player.Pose = next
	s.statDistance.Add(next.DistanceTo(from))
	if rolledBack {
		player.RolledBack = true
		s.statRollbacks.Add(1)
	}
}

// ResolveMove clamps a proposed pose to the movement bounds
// Each axis is tested against the other axis' old value and reverted on its own,
// so the player slides along walls instead of sticking to them
func ResolveMove(plan *space.FloorPlan, from, to core.Pose) (core.Pose, bool) {
	out := to
	rolledBack := false

	if !plan.InMovementBounds(to.X, from.Z) {
		out.X = from.X
		rolledBack = true
	}
	if !plan.InMovementBounds(from.X, to.Z) {
		out.Z = from.Z
		rolledBack = true
	}
	// Both axes pass alone but the diagonal lands past an outer corner
	if !rolledBack && !plan.InMovementBounds(out.X, out.Z) {
		out.Z = from.Z
		rolledBack = true
	}

	out.Y = from.Y
	return out, rolledBack
}
