package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// Tracker turns terminal key events into per-tick level inputs
// Terminals report presses and autorepeats but never releases, so an action
// counts as held while its last event is younger than the action's hold window
// Not safe for concurrent use; the game loop owns it
type Tracker struct {
	table *KeyTable
	clock engine.Clock

	lastSeen [actionCount]time.Time
	seen     [actionCount]bool

	moveWindow   time.Duration
	actionWindow time.Duration
}

// NewTracker creates a tracker; a nil table uses the defaults, a nil clock wall time
func NewTracker(table *KeyTable, clock engine.Clock) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Tracker{
		table:        table,
		clock:        clock,
		moveWindow:   parameter.MoveHoldWindow,
		actionWindow: parameter.ActionHoldWindow,
	}
}

// HandleEvent records ev and returns the one-shot command it carries, if any
func (t *Tracker) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		t.HandleMouse(ev.Buttons())
	}
	return ActionNone
}

// HandleKey records a key press; r is only meaningful for tcell.KeyRune
func (t *Tracker) HandleKey(key tcell.Key, r rune) Action {
	action := t.table.Lookup(key, r)
	if action == ActionNone {
		return ActionNone
	}
	if action.IsCommand() {
		return action
	}
	t.press(action)
	return ActionNone
}

// HandleMouse records a mouse event; a primary click dismisses
func (t *Tracker) HandleMouse(buttons tcell.ButtonMask) {
	if buttons&tcell.Button1 != 0 {
		t.press(ActionDismiss)
	}
}

func (t *Tracker) press(a Action) {
	t.lastSeen[a] = t.clock.Now()
	t.seen[a] = true
}

// Held reports whether a is currently considered held
func (t *Tracker) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount || !t.seen[a] {
		return false
	}
	window := t.actionWindow
	switch a {
	case ActionForward, ActionBack, ActionLeft, ActionRight:
		window = t.moveWindow
	}
	return t.clock.Now().Sub(t.lastSeen[a]) < window
}

// Controls samples the held state for one tick
// Forward is +z, right is +x
func (t *Tracker) Controls() engine.Controls {
	var c engine.Controls
	if t.Held(ActionRight) {
		c.MoveX++
	}
	if t.Held(ActionLeft) {
		c.MoveX--
	}
	if t.Held(ActionForward) {
		c.MoveZ++
	}
	if t.Held(ActionBack) {
		c.MoveZ--
	}
	c.Hide = t.Held(ActionHide)
	c.Use = t.Held(ActionUse)
	c.Dismiss = t.Held(ActionDismiss)
	return c
}

// Release forgets every held action
func (t *Tracker) Release() {
	t.seen = [actionCount]bool{}
}
