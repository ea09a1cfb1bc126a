package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// ClockScheduler drives World ticks from a pausable game clock
// It samples the clock once per tick and hands the same Clock to every system
// Not safe for concurrent Step calls; the game loop owns it
type ClockScheduler struct {
	world *World
	clock *PausableClock

	briefing bool
	lastNow  time.Duration
	tick     uint64

	observers []func(*World)

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler; with briefing set the clock stays paused
// until a Dismiss control arrives
func NewClockScheduler(world *World, clock *PausableClock, briefing bool) *ClockScheduler {
	cs := &ClockScheduler{
		world:     world,
		clock:     clock,
		briefing:  briefing,
		statTicks: world.Resources.Status.Ints.Get("engine.ticks"),
	}
	if briefing {
		clock.Pause()
	}
	return cs
}

// Observe registers fn to run after every completed tick
func (cs *ClockScheduler) Observe(fn func(*World)) {
	cs.observers = append(cs.observers, fn)
}

// Briefing reports whether the session has not started yet
func (cs *ClockScheduler) Briefing() bool {
	return cs.briefing
}

// Step consumes the controls for one tick and advances the world
// Returns false once the session is over
func (cs *ClockScheduler) Step(controls Controls) bool {
	if cs.world.Resources.Session.Over {
		return false
	}

	if cs.briefing {
		if !controls.Dismiss {
			return true
		}
		cs.briefing = false
		cs.clock.Resume()
		log.Printf("session started after %v briefing", cs.clock.TotalPauseDuration())
		// The dismiss press must not leak into the first tick
		controls = Controls{}
	}

	now := cs.clock.Elapsed()
	delta := now - cs.lastNow
	if delta > parameter.MaxTickDelta {
		delta = parameter.MaxTickDelta
	}
	if delta < 0 {
		delta = 0
	}
	cs.lastNow = now
	cs.tick++

	cs.world.Resources.Controls = controls
	cs.world.Update(core.Clock{Now: now, Delta: delta, Tick: cs.tick})
	cs.statTicks.Add(1)

	for _, fn := range cs.observers {
		fn(cs.world)
	}

	if cs.world.Resources.Session.Over {
		log.Printf("session over at %v: %s", now, cs.world.Resources.Session.Reason)
		return false
	}
	return true
}
