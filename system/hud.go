package system

import (
	"fmt"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// HUDSystem derives the UI outputs from the settled tick state
type HUDSystem struct {
	world *engine.World
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(world *engine.World) engine.System {
	s := &HUDSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *HUDSystem) Init() {
	s.world.Resources.HUD = engine.HUD{LightIntensity: parameter.LightIntensityOn}
}

// Name returns system's name
func (s *HUDSystem) Name() string {
	return "hud"
}

// Priority returns the system's priority
func (s *HUDSystem) Priority() int {
	return parameter.PriorityHUD
}

// Update writes prompts, progress and lighting
func (s *HUDSystem) Update() {
	r := s.world.Resources
	hud := &r.HUD
	v := r.Visibility
	pose := r.Player.Pose

	switch {
	case v.Hidden:
		hud.HidePrompt = parameter.PromptUnhide
	case v.CanHide:
		hud.HidePrompt = parameter.PromptHide
	default:
		hud.HidePrompt = ""
	}

	hud.UsePrompt = ""
	if !v.Hidden && r.Plan.ConcealedAt(pose.X, pose.Z) {
		hud.UsePrompt = parameter.PromptUse
	}

	hud.ProgressPct = r.Progress.Percent(r.Tuning.MaxProgress)
	hud.ProgressText = fmt.Sprintf(parameter.ProgressFormat, hud.ProgressPct)

	if v.Hidden {
		hud.LightIntensity = parameter.LightIntensityOff
	} else {
		hud.LightIntensity = parameter.LightIntensityOn
	}

	hud.Overlay = r.Encounter.Display
	hud.OverlaySince = r.Encounter.LastDisplayed
}
