package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(12, 12, 18)    // Outside the walkable area
	RgbFloor      = tcell.NewRGBColor(58, 60, 78)    // Corridor and entry
	RgbAisle      = tcell.NewRGBColor(40, 52, 70)    // Concealment zones
	RgbDesk       = tcell.NewRGBColor(96, 72, 48)    // Desk blocks beside the aisles
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbPrompt     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbDebugText  = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbPlayer       = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbPlayerHidden = tcell.NewRGBColor(90, 90, 110)   // Crouched under a desk

	RgbComputerIdle     = tcell.NewRGBColor(70, 70, 70) // Locked session
	RgbComputerUnlocked = tcell.NewRGBColor(50, 255, 50)

	RgbScareBg   = tcell.NewRGBColor(120, 0, 0)
	RgbScareText = tcell.NewRGBColor(255, 220, 220)

	RgbBriefingText = tcell.NewRGBColor(200, 200, 210)
)

// dimColor scales an RGB color toward black
// factor 1 keeps the color, 0 yields black
func dimColor(c tcell.Color, factor float64) tcell.Color {
	if factor >= 1 {
		return c
	}
	if factor < 0 {
		factor = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
