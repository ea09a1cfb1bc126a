package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// UseSystem consumes one reachable unlocked computer per use press
// and advances the progress ledger
type UseSystem struct {
	world *engine.World

	pressed bool

	statConsumed *atomic.Int64
}

// NewUseSystem creates a new use system
func NewUseSystem(world *engine.World) engine.System {
	s := &UseSystem{
		world:        world,
		statConsumed: world.Resources.Status.Ints.Get("points.consumed"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *UseSystem) Init() {
	s.pressed = false
	s.world.Resources.Progress = engine.Progress{}
}

// Name returns system's name
func (s *UseSystem) Name() string {
	return "use"
}

// Priority returns the system's priority
func (s *UseSystem) Priority() int {
	return parameter.PriorityUse
}

// Update handles the use input edge
func (s *UseSystem) Update() {
	r := s.world.Resources

	pressed := r.Controls.Use
	rising := pressed && !s.pressed
	s.pressed = pressed
	if !rising {
		return
	}

	pose := r.Player.Pose
	if r.Visibility.Hidden || !r.Plan.ConcealedAt(pose.X, pose.Z) {
		return
	}

	for _, id := range r.Points.IDs() {
		if !r.Plan.CanReachInteractionPoint(pose, id) {
			continue
		}
		r.Points.Remove(id)
		r.Progress.Completed++
		s.statConsumed.Add(1)
		log.Printf("use: computer %d consumed, completed=%d", id, r.Progress.Completed)
		return
	}
}
