package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/space"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Cell glyphs
const (
	glyphPlayer       = '@'
	glyphPlayerHidden = '_'
	glyphComputer     = '□'
	glyphUnlocked     = '■'
)

// darkFactor is the floor brightness while the player lamp is off
const darkFactor = 0.35

// Renderer draws frames of one floor plan
type Renderer struct {
	plan *space.FloorPlan
}

// NewRenderer creates a renderer for plan
func NewRenderer(plan *space.FloorPlan) *Renderer {
	return &Renderer{plan: plan}
}

// Viewport returns the mapping used for a canvas of the given size
func (r *Renderer) Viewport(width, height int) Viewport {
	return NewViewport(r.plan.Extent(), width, height-parameter.HUDRows)
}

// Draw renders f onto c, overwriting every cell
func (r *Renderer) Draw(c Canvas, f Frame) {
	width, height := c.Size()
	if width <= 0 || height <= 0 {
		return
	}

	bg := tcell.StyleDefault.Background(RgbBackground)
	fill(c, 0, 0, width, height, bg)

	if f.Briefing {
		drawCentered(c, width, height, strings.Split(parameter.Briefing, "\n"),
			tcell.StyleDefault.Foreground(RgbBriefingText).Background(RgbBackground))
		return
	}

	vp := r.Viewport(width, height)
	if f.HUD.Overlay {
		r.drawScare(c, vp)
	} else {
		r.drawFloor(c, vp, f)
		r.drawComputers(c, vp, f)
		r.drawPlayer(c, vp, f)
	}

	r.drawHUD(c, width, vp.Rows, f)

	if f.Debug {
		drawPanel(c, width, f.Metrics)
	}

	if f.Over {
		drawCentered(c, width, vp.Rows, []string{
			fmt.Sprintf(parameter.OverFormat, f.Reason),
			"",
			parameter.OverHint,
		}, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar))
	}
}

func (r *Renderer) drawFloor(c Canvas, vp Viewport, f Frame) {
	factor := 1.0
	if f.HUD.LightIntensity <= parameter.LightIntensityOff {
		factor = darkFactor
	}
	wall := tcell.StyleDefault.Background(RgbWall)
	floor := tcell.StyleDefault.Background(dimColor(RgbFloor, factor))
	aisle := tcell.StyleDefault.Background(dimColor(RgbAisle, factor))

	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			x, z := vp.ToWorld(col, row)
			style := wall
			switch {
			case r.plan.ConcealedAt(x, z):
				style = aisle
			case r.plan.InMovementBounds(x, z):
				style = floor
			}
			c.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawComputers(c Canvas, vp Viewport, f Frame) {
	unlocked := make(map[int]bool, len(f.Unlocked))
	for _, id := range f.Unlocked {
		unlocked[id] = true
	}

	grid := r.plan.Grid
	for id := 0; id < grid.Count; id++ {
		x, z := grid.Anchor(id)
		col, row := vp.ToCell(x, z)
		if !vp.InView(col, row) {
			continue
		}
		glyph, fg := glyphComputer, RgbComputerIdle
		if unlocked[id] {
			glyph, fg = glyphUnlocked, RgbComputerUnlocked
		}
		c.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(RgbDesk))
	}
}

func (r *Renderer) drawPlayer(c Canvas, vp Viewport, f Frame) {
	col, row := vp.ToCell(f.Pose.X, f.Pose.Z)
	if !vp.InView(col, row) {
		return
	}
	glyph, fg := rune(glyphPlayer), RgbPlayer
	if f.Hidden {
		glyph, fg = glyphPlayerHidden, RgbPlayerHidden
	}
	c.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(RgbAisle).Bold(true))
}

func (r *Renderer) drawScare(c Canvas, vp Viewport) {
	style := tcell.StyleDefault.Foreground(RgbScareText).Background(RgbScareBg)
	fill(c, 0, 0, vp.Cols, vp.Rows, style)
	drawCentered(c, vp.Cols, vp.Rows, []string{parameter.ScareText}, style.Bold(true))
}

func (r *Renderer) drawHUD(c Canvas, width, top int, f Frame) {
	bar := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	fill(c, 0, top, width, 1, bar)
	drawText(c, 1, top, width, f.HUD.ProgressText, bar)
	if f.Muted {
		drawText(c, width-len(parameter.MutedText)-1, top, width, parameter.MutedText, bar)
	}

	var prompts []string
	for _, p := range []string{f.HUD.HidePrompt, f.HUD.UsePrompt} {
		if p != "" {
			prompts = append(prompts, p)
		}
	}
	drawText(c, 1, top+1, width, strings.Join(prompts, "  |  "),
		tcell.StyleDefault.Foreground(RgbPrompt).Background(RgbBackground))
}

func drawPanel(c Canvas, width int, lines []string) {
	if len(lines) == 0 {
		return
	}
	left := max(width-parameter.DebugPanelW, 0)
	style := tcell.StyleDefault.Foreground(RgbDebugText).Background(RgbBackground)
	fill(c, left, 0, width-left, len(lines), style)
	for i, line := range lines {
		drawText(c, left+1, i, width, line, style)
	}
}

// fill paints a w x h block starting at (x, y)
func fill(c Canvas, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawText writes s from (x, y), clipped at limit
func drawText(c Canvas, x, y, limit int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, ch := range s {
		if x >= limit {
			return
		}
		c.SetContent(x, y, ch, nil, style)
		x++
	}
}

// drawCentered writes lines as a block centered in a width x height area
func drawCentered(c Canvas, width, height int, lines []string, style tcell.Style) {
	top := max((height-len(lines))/2, 0)
	for i, line := range lines {
		n := len([]rune(line))
		drawText(c, max((width-n)/2, 0), top+i, width, line, style)
	}
}
