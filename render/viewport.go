package render

import (
	"math"

	"github.com/lixenwraith/machine-room/core"
)

// cellAspect is the width:height ratio of a terminal cell
const cellAspect = 2.0

// Viewport maps floor-plan coordinates onto a grid of terminal cells
// +x runs right, +z runs up the screen
type Viewport struct {
	Extent        core.Rect
	Cols, Rows    int
	ScaleX, ScaleZ float64 // Cells per world unit
}

// NewViewport fits extent into cols x rows, keeping the aspect of terminal cells
func NewViewport(extent core.Rect, cols, rows int) Viewport {
	v := Viewport{Extent: extent, Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 || extent.Width() <= 0 || extent.Depth() <= 0 {
		return v
	}
	v.ScaleZ = math.Min(float64(rows)/extent.Depth(), float64(cols)/(cellAspect*extent.Width()))
	v.ScaleX = v.ScaleZ * cellAspect
	return v
}

// ToCell returns the cell containing world point (x, z)
func (v Viewport) ToCell(x, z float64) (col, row int) {
	col = int(math.Floor((x - v.Extent.MinX) * v.ScaleX))
	row = int(math.Floor((v.Extent.MaxZ - z) * v.ScaleZ))
	return col, row
}

// ToWorld returns the world point at the center of a cell
func (v Viewport) ToWorld(col, row int) (x, z float64) {
	x = v.Extent.MinX + (float64(col)+0.5)/v.ScaleX
	z = v.Extent.MaxZ - (float64(row)+0.5)/v.ScaleZ
	return x, z
}

// InView reports whether a cell lies inside the mapped area
func (v Viewport) InView(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
