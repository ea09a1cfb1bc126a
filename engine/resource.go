package engine

import (
	"time"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/space"
	"github.com/lixenwraith/machine-room/status"
)

// Resources holds the session state shared by all systems
// Each field has exactly one writing system; the rest only read it within the tick
type Resources struct {
	Clock  core.Clock
	Plan   *space.FloorPlan
	Tuning *Tuning
	Rand   Rand

	// Written by the driver before each tick
	Controls Controls

	// Written by MovementSystem
	Player PlayerResource

	// Written by VisibilitySystem
	Visibility Visibility

	// Written by UseSystem
	Progress Progress

	// Written by SpawnSystem and UseSystem
	Points PointSet

	// Written by EncounterSystem
	Encounter Encounter
	Session   Session

	// Written by HUDSystem
	HUD HUD

	// Optional collaborators; nil means absent
	Audio  AudioPlayer
	Status *status.Registry
}

// Controls is the level-sensed input state for one tick
type Controls struct {
	MoveX   float64 // Right
	MoveZ   float64 // Forward
	Hide    bool
	Use     bool
	Dismiss bool
}

// PlayerResource holds the player pose and the movement gate outputs
type PlayerResource struct {
	Pose       core.Pose
	Suppressed bool // Translation frozen this tick
	RolledBack bool // A proposed axis was rejected this tick
}

// Visibility is the hiding state machine
type Visibility struct {
	Hidden  bool
	CanHide bool
	Pressed bool // Hide input latch for edge detection
}

// Progress counts completed interactions
type Progress struct {
	Completed int
}

// Clamped returns Completed limited to maxProgress
func (p Progress) Clamped(maxProgress int) int {
	if p.Completed > maxProgress {
		return maxProgress
	}
	return p.Completed
}

// Divisor returns the rate-formula divisor clamp(Completed)+1, never zero
func (p Progress) Divisor(maxProgress int) float64 {
	return float64(p.Clamped(maxProgress) + 1)
}

// Percent returns the displayed completion percentage
func (p Progress) Percent(maxProgress int) int {
	if maxProgress <= 0 {
		return 0
	}
	return int(float64(p.Clamped(maxProgress))/float64(maxProgress)*100 + 0.5)
}

// Encounter is the antagonist timer
type Encounter struct {
	Armed         bool          // NextTriggerAt has been initialised
	NextTriggerAt time.Duration // Game time of the next trigger
	Played        bool          // Warning cue already played this cycle

	Display       bool          // Scare overlay visible
	LastDisplayed time.Duration // When the overlay was raised

	Cycles int // Completed triggers
}

// Session holds end-of-session state
type Session struct {
	Over   bool
	Reason string
}

// HUD holds the outputs for the UI collaborator
type HUD struct {
	HidePrompt     string
	UsePrompt      string
	ProgressText   string
	ProgressPct    int
	LightIntensity float64
	Overlay        bool
	OverlaySince   time.Duration
}

// AudioPlayer is the optional audio capability
type AudioPlayer interface {
	Play(st core.SoundType, volume float64) bool
	ToggleMute() bool
	IsMuted() bool
}
