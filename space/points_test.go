package space

import (
	"testing"

	"github.com/lixenwraith/machine-room/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointGrid_RowColumnFormula(t *testing.T) {
	g := DefaultPointGrid()

	row, col := g.Cell(12)
	assert.Equal(t, 1, row)
	assert.Equal(t, 4, col)

	// Column 4 crosses the lateral threshold
	x, z := g.Anchor(12)
	assert.InDelta(t, 0.2-3.9-0.3, x, 1e-9)
	assert.InDelta(t, -7.5-4*1.9, z, 1e-9)

	trigger := g.Trigger(12)
	assert.InDelta(t, x, trigger.MinX, 1e-9)
	assert.InDelta(t, x+0.35, trigger.MaxX, 1e-9)
	assert.InDelta(t, z-1.8, trigger.MinZ, 1e-9)
	assert.InDelta(t, z, trigger.MaxZ, 1e-9)
}

func TestPointGrid_LateralShiftOnlyPastThreshold(t *testing.T) {
	g := DefaultPointGrid()

	x3, _ := g.Anchor(11) // row 1, col 3
	x4, _ := g.Anchor(12) // row 1, col 4
	x8, _ := g.Anchor(8)  // row 1, col 0
	assert.InDelta(t, x8, x3, 1e-9)
	assert.InDelta(t, x3-g.LateralShift, x4, 1e-9)
}

func TestCanReachInteractionPoint(t *testing.T) {
	f := DefaultFloorPlan()
	trigger := f.Grid.Trigger(12)

	inside := core.Pose{X: (trigger.MinX + trigger.MaxX) / 2, Z: (trigger.MinZ + trigger.MaxZ) / 2}
	require.True(t, f.CanReachInteractionPoint(inside, 12))

	far := inside.Translated(10, 0)
	assert.InDelta(t, 10, inside.DistanceTo(far), 1e-9)
	assert.False(t, f.CanReachInteractionPoint(far, 12))

	// Reach window belongs to one id only
	assert.False(t, f.CanReachInteractionPoint(inside, 13))
	assert.False(t, f.CanReachInteractionPoint(inside, 4))
}

func TestCanReach_InvalidIDs(t *testing.T) {
	g := DefaultPointGrid()
	pose := core.Pose{}

	assert.False(t, g.CanReach(pose, -1))
	assert.False(t, g.CanReach(pose, g.Count))
}

func TestEveryComputerIsReachableFromAnAisle(t *testing.T) {
	f := DefaultFloorPlan()

	for id := 0; id < f.Grid.Count; id++ {
		r := f.Grid.Trigger(id)
		cx := (r.MinX + r.MaxX) / 2
		cz := (r.MinZ + r.MaxZ) / 2
		assert.True(t, f.ConcealedAt(cx, cz), "computer %d reach window outside aisles", id)
		assert.True(t, f.InMovementBounds(cx, cz), "computer %d reach window not walkable", id)
	}
}
