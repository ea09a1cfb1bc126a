package space

import (
	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// PointGrid derives each computer's reach window from its id
// row = id / PerRow, col = id % PerRow; the row sets the desk face along x,
// the column sets depth along z, and columns at or past LateralThreshold are
// shifted sideways by LateralShift
type PointGrid struct {
	Count            int
	PerRow           int
	LateralThreshold int

	OriginX      float64
	OriginZ      float64
	RowPitch     float64
	ColumnPitch  float64
	LateralShift float64

	TriggerWidth float64
	TriggerDepth float64
}

// DefaultPointGrid returns the machine room computer layout
func DefaultPointGrid() PointGrid {
	return PointGrid{
		Count:            parameter.ComputerCount,
		PerRow:           parameter.ComputersPerRow,
		LateralThreshold: parameter.ComputerLateralThreshold,
		OriginX:          parameter.ComputerOriginX,
		OriginZ:          parameter.ComputerOriginZ,
		RowPitch:         parameter.ComputerRowPitch,
		ColumnPitch:      parameter.ComputerColumnPitch,
		LateralShift:     parameter.ComputerLateralShift,
		TriggerWidth:     parameter.ComputerTriggerWidth,
		TriggerDepth:     parameter.ComputerTriggerDepth,
	}
}

// Cell returns the row and column of id
func (g PointGrid) Cell(id int) (row, col int) {
	return id / g.PerRow, id % g.PerRow
}

// Valid reports whether id belongs to the grid
func (g PointGrid) Valid(id int) bool {
	return id >= 0 && id < g.Count && g.PerRow > 0
}

// Anchor returns the computed anchor position of id
func (g PointGrid) Anchor(id int) (x, z float64) {
	row, col := g.Cell(id)
	x = g.OriginX - float64(row)*g.RowPitch
	if col >= g.LateralThreshold {
		x -= g.LateralShift
	}
	z = g.OriginZ - float64(col)*g.ColumnPitch
	return x, z
}

// Trigger returns the reach window of id: TriggerWidth along +x and
// TriggerDepth along -z from the anchor
func (g PointGrid) Trigger(id int) core.Rect {
	x, z := g.Anchor(id)
	return core.R(x, z-g.TriggerDepth, x+g.TriggerWidth, z)
}

// CanReach reports whether a player at pose can use computer id
func (g PointGrid) CanReach(pose core.Pose, id int) bool {
	if !g.Valid(id) {
		return false
	}
	return g.Trigger(id).Contains(pose.X, pose.Z)
}

// CanReachInteractionPoint reports whether pose can use computer id on this floor plan
func (f *FloorPlan) CanReachInteractionPoint(pose core.Pose, id int) bool {
	return f.Grid.CanReach(pose, id)
}
