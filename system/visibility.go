package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// VisibilitySystem runs the hiding state machine
// CanHide is recomputed from the settled pose; Hidden flips once per press
type VisibilitySystem struct {
	world *engine.World

	statToggles *atomic.Int64
	statHidden  *atomic.Bool
}

// NewVisibilitySystem creates a new visibility system
func NewVisibilitySystem(world *engine.World) engine.System {
	s := &VisibilitySystem{
		world:       world,
		statToggles: world.Resources.Status.Ints.Get("visibility.toggles"),
		statHidden:  world.Resources.Status.Bools.Get("visibility.hidden"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *VisibilitySystem) Init() {
	s.world.Resources.Visibility = engine.Visibility{}
	s.statHidden.Store(false)
}

// Name returns system's name
func (s *VisibilitySystem) Name() string {
	return "visibility"
}

// Priority returns the system's priority
func (s *VisibilitySystem) Priority() int {
	return parameter.PriorityVisibility
}

// Update recomputes eligibility and applies the hide input edge
func (s *VisibilitySystem) Update() {
	r := s.world.Resources
	v := &r.Visibility
	pose := r.Player.Pose

	v.CanHide = r.Plan.ConcealedAt(pose.X, pose.Z)

	pressed := r.Controls.Hide
	if !pressed {
		v.Pressed = false
		return
	}
	if v.Pressed {
		return
	}
	v.Pressed = true

	// Leaving a hiding spot is always allowed
	if !v.CanHide && !v.Hidden {
		return
	}
	v.Hidden = !v.Hidden
	s.statHidden.Store(v.Hidden)
	s.statToggles.Add(1)
	log.Printf("visibility: hidden=%v at (%.2f, %.2f) t=%v", v.Hidden, pose.X, pose.Z, r.Clock.Now)
}
