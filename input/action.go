package input

// Action discriminates what a key does
type Action uint8

const (
	ActionNone Action = iota

	// Held gameplay actions, sampled every tick
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionHide
	ActionUse
	ActionDismiss

	// One-shot commands handled by the driver
	ActionMute
	ActionDebug
	ActionQuit

	actionCount
)

// actionRegistry maps canonical action names used in the [keys] config table
var actionRegistry = map[string]Action{
	"none":    ActionNone, // Unbind sentinel
	"forward": ActionForward,
	"back":    ActionBack,
	"left":    ActionLeft,
	"right":   ActionRight,
	"hide":    ActionHide,
	"use":     ActionUse,
	"dismiss": ActionDismiss,
	"mute":    ActionMute,
	"debug":   ActionDebug,
	"quit":    ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// String returns the canonical action name
func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a && (a != ActionNone || name == "none") {
			return name
		}
	}
	return "unknown"
}

// IsCommand reports whether the action is a one-shot driver command
func (a Action) IsCommand() bool {
	return a >= ActionMute && a < actionCount
}
