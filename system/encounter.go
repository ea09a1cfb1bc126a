package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/status"
)

// EncounterSystem schedules the antagonist
// A warning cue precedes each trigger by a lead that shrinks with progress;
// the trigger scares a visible player and always reschedules
type EncounterSystem struct {
	world *engine.World

	statWarnings *atomic.Int64
	statScares   *atomic.Int64
	statMuted    *atomic.Int64
	statLead     *status.AtomicFloat
}

// NewEncounterSystem creates a new encounter system
func NewEncounterSystem(world *engine.World) engine.System {
	s := &EncounterSystem{
		world:        world,
		statWarnings: world.Resources.Status.Ints.Get("encounter.warnings"),
		statScares:   world.Resources.Status.Ints.Get("encounter.scares"),
		statMuted:    world.Resources.Status.Ints.Get("encounter.muted"),
		statLead:     world.Resources.Status.Floats.Get("encounter.warning_lead_s"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EncounterSystem) Init() {
	s.world.Resources.Encounter = engine.Encounter{}
}

// Name returns system's name
func (s *EncounterSystem) Name() string {
	return "encounter"
}

// Priority returns the system's priority
func (s *EncounterSystem) Priority() int {
	return parameter.PriorityEncounter
}

// Update advances the encounter schedule by one tick
func (s *EncounterSystem) Update() {
	r := s.world.Resources
	enc := &r.Encounter
	tuning := r.Tuning.Encounter
	now := r.Clock.Now

	if !enc.Armed {
		enc.NextTriggerAt = now + tuning.InitialDelay + s.jitter(tuning.InitialJitter)
		enc.Armed = true
		log.Printf("encounter: armed, first trigger at %v", enc.NextTriggerAt)
	}

	divisor := r.Progress.Divisor(r.Tuning.MaxProgress)
	lead := WarningLead(tuning, divisor)
	s.statLead.Set(lead.Seconds())

	if !enc.Played && now > enc.NextTriggerAt-lead {
		playCue(r, core.SoundWarning, r.Tuning.Volume.Warning)
		enc.Played = true
		s.statWarnings.Add(1)
	}

	if enc.Display && now-enc.LastDisplayed > tuning.DisplayDuration {
		enc.Display = false
		if tuning.FatalScare {
			r.Session.Over = true
			r.Session.Reason = "caught by the supervisor"
		}
	}

	if now <= enc.NextTriggerAt {
		return
	}

	if r.Visibility.Hidden {
		s.statMuted.Add(1)
		log.Printf("encounter: trigger at %v muted, player hidden", now)
	} else {
		playCue(r, core.SoundScare, r.Tuning.Volume.Scare)
		enc.Display = true
		enc.LastDisplayed = now
		s.statScares.Add(1)
		log.Printf("encounter: scare at %v", now)
	}

	enc.Played = false
	enc.Cycles++
	enc.NextTriggerAt = now + tuning.RescheduleFloor +
		core.FromSeconds(float64(r.Tuning.MaxProgress)/divisor) +
		s.jitter(tuning.RescheduleJitter)
}

func (s *EncounterSystem) jitter(span time.Duration) time.Duration {
	return time.Duration(s.world.Resources.Rand.Float64() * float64(span))
}

// WarningLead returns how long before a trigger the warning cue plays
// divisor is the clamped completed count plus one
func WarningLead(tuning engine.EncounterTuning, divisor float64) time.Duration {
	if divisor < 1 {
		divisor = 1
	}
	return tuning.WarningLead + core.FromSeconds(tuning.WarningScale/divisor)
}
