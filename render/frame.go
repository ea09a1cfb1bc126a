package render

import (
	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
)

// Frame provides session state for the renderer, passed by value
type Frame struct {
	Pose     core.Pose
	Hidden   bool
	HUD      engine.HUD
	Unlocked []int

	Over   bool
	Reason string

	// Driver state outside the simulation
	Briefing bool
	Muted    bool
	Debug    bool
	Metrics  []string
}

// NewFrame copies the render-relevant resources of w
// Call from the goroutine that drives the world
func NewFrame(w *engine.World, briefing, muted, debug bool) Frame {
	r := w.Resources
	f := Frame{
		Pose:     r.Player.Pose,
		Hidden:   r.Visibility.Hidden,
		HUD:      r.HUD,
		Unlocked: r.Points.IDs(),
		Over:     r.Session.Over,
		Reason:   r.Session.Reason,
		Briefing: briefing,
		Muted:    muted,
		Debug:    debug,
	}
	if debug && r.Status != nil {
		f.Metrics = r.Status.Lines()
	}
	return f
}
