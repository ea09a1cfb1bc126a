package parameter

// Prompts
const (
	PromptHide     = "Press 'P' to hide"
	PromptUnhide   = "Press 'P' again to stop hiding"
	PromptUse      = "Press 'J' to grab the code"
	ProgressFormat = "Tests passed: %d%%"
)

// Briefing shown before the session clock starts
const Briefing = "The assignment is due tomorrow night and you have done nothing.\n\n" +
	"Half panicked and fully lazy, you sneak into the machine room at night\n" +
	"to grab the work of students who forgot to lock their sessions.\n\n" +
	"But beware, the supervisor is prowling and will not let you get away with it.\n" +
	"If you hear a strange noise, hide under a desk quickly,\n" +
	"and maybe you will make it out alive.\n\n" +
	"Click or press Enter to start"

// Light intensity of the player lamp
const (
	LightIntensityOn  = 2.0
	LightIntensityOff = 0.0
)

// Overlay and end-of-session text
const (
	ScareText  = "THE SUPERVISOR FOUND YOU"
	OverFormat = "Session over: %s"
	OverHint   = "Press 'Q' to leave"
	MutedText  = "[muted]"
)

// Screen layout
const (
	HUDRows     = 2  // Status lines under the map
	DebugPanelW = 30 // Metrics panel width in cells
)
