package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/machine-room/core"
)

func TestViewport_KeepsCellAspect(t *testing.T) {
	vp := NewViewport(core.R(0, 0, 10, 10), 100, 20)
	assert.InDelta(t, 2.0, vp.ScaleZ, 1e-9)
	assert.InDelta(t, 4.0, vp.ScaleX, 1e-9)

	vp = NewViewport(core.R(0, 0, 10, 10), 20, 100)
	assert.InDelta(t, 1.0, vp.ScaleZ, 1e-9)
	assert.InDelta(t, 2.0, vp.ScaleX, 1e-9)
}

func TestViewport_ZGrowsUpward(t *testing.T) {
	vp := NewViewport(core.R(-10, -10, 0, 0), 40, 20)

	col, row := vp.ToCell(-9.99, -0.01)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	_, lower := vp.ToCell(-5, -8)
	_, upper := vp.ToCell(-5, -2)
	assert.Greater(t, lower, upper)
}

func TestViewport_RoundTrip(t *testing.T) {
	vp := NewViewport(core.R(-26.75, -22.5, 0.65, 0.65), 80, 22)
	for _, c := range [][2]int{{0, 0}, {10, 5}, {40, 20}} {
		x, z := vp.ToWorld(c[0], c[1])
		col, row := vp.ToCell(x, z)
		assert.Equal(t, c[0], col)
		assert.Equal(t, c[1], row)
	}
}

func TestViewport_Degenerate(t *testing.T) {
	vp := NewViewport(core.R(0, 0, 10, 10), 0, 5)
	assert.Zero(t, vp.ScaleX)
	assert.False(t, vp.InView(0, 0))
}
