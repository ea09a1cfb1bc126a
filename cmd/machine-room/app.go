package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/input"
	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/render"
	"github.com/lixenwraith/machine-room/spectate"
)

// app is the game loop state owned by the main goroutine
type app struct {
	world    *engine.World
	sched    *engine.ClockScheduler
	tracker  *input.Tracker
	renderer *render.Renderer
	audio    engine.AudioPlayer
	hub      *spectate.Hub

	debug bool
	over  bool
	quit  bool

	lastPublish time.Duration
	published   bool
}

func newApp(world *engine.World, clock engine.Clock, table *input.KeyTable, briefing bool) *app {
	a := &app{
		world:    world,
		sched:    engine.NewClockScheduler(world, engine.NewPausableClock(clock), briefing),
		tracker:  input.NewTracker(table, clock),
		renderer: render.NewRenderer(world.Resources.Plan),
		audio:    world.Resources.Audio,
	}
	a.sched.Observe(a.publish)
	return a
}

// attachHub starts publishing snapshots to hub
func (a *app) attachHub(hub *spectate.Hub) {
	a.hub = hub
}

// handleEvent feeds a terminal event to the tracker and runs any command it carries
func (a *app) handleEvent(ev tcell.Event) {
	a.command(a.tracker.HandleEvent(ev))
}

func (a *app) command(action input.Action) {
	switch action {
	case input.ActionQuit:
		a.quit = true
	case input.ActionMute:
		if a.audio != nil {
			muted := a.audio.ToggleMute()
			log.Printf("audio muted: %v", muted)
		}
	case input.ActionDebug:
		a.debug = !a.debug
	}
}

// tick advances the session by one step; a finished session stays on screen
func (a *app) tick() {
	if a.over {
		return
	}
	if !a.sched.Step(a.tracker.Controls()) {
		a.over = true
		// Final state regardless of throttling
		a.published = false
		a.publish(a.world)
	}
}

func (a *app) publish(w *engine.World) {
	if a.hub == nil {
		return
	}
	now := w.Resources.Clock.Now
	if a.published && now-a.lastPublish < parameter.SnapshotInterval {
		return
	}
	a.lastPublish = now
	a.published = true
	if err := a.hub.Publish(w.TakeSnapshot()); err != nil {
		log.Printf("spectator publish: %v", err)
	}
}

func (a *app) muted() bool {
	return a.audio != nil && a.audio.IsMuted()
}

func (a *app) draw(c render.Canvas) {
	a.renderer.Draw(c, render.NewFrame(a.world, a.sched.Briefing(), a.muted(), a.debug))
}
