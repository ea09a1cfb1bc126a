package space

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMovementBounds_Corridor(t *testing.T) {
	f := DefaultFloorPlan()

	tests := []struct {
		name string
		x, z float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"far corridor", -24.9, 0, true},
		{"beyond corridor end", -30, 0, false},
		{"edge is exclusive", 0.65, 0, false},
		{"behind corridor", 0, 1, false},
		{"right door", -2.0, -3.0, true},
		{"wall between doors", -5.0, -3.0, false},
		{"entry strip", -6.0, -5.0, true},
		{"right aisle", 0, -15, true},
		{"desk block", -2.0, -15, false},
		{"mirrored aisle", -19, -10, true},
		{"mirrored desk", -16, -15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.InMovementBounds(tt.x, tt.z))
		})
	}
}

func TestMirroredRoomMatchesTranslatedQuery(t *testing.T) {
	f := DefaultFloorPlan()
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 20000; i++ {
		x := -30 + rng.Float64()*32
		z := -24 + rng.Float64()*26
		assert.Equal(t, f.InRoomInterior(x+f.MirrorOffset, z), f.InMirroredRoom(x, z), "x=%f z=%f", x, z)
	}
}

func TestMirroredRoomUsesFixedOffset(t *testing.T) {
	f := DefaultFloorPlan()
	assert.Equal(t, 14.0, f.MirrorOffset)

	// Every interior point of the described room has a twin 14 units to -x
	for _, r := range append(append(f.Doors, f.Entry...), f.Concealment...) {
		cx := (r.MinX + r.MaxX) / 2
		cz := (r.MinZ + r.MaxZ) / 2
		assert.True(t, f.InRoomInterior(cx, cz))
		assert.True(t, f.InMirroredRoom(cx-14, cz))
		assert.True(t, f.InMovementBounds(cx-14, cz))
	}
}

func TestConcealment(t *testing.T) {
	f := DefaultFloorPlan()

	assert.True(t, f.InConcealmentZone(0, -10), "right aisle")
	assert.True(t, f.InConcealmentZone(-5, -10), "center aisle")
	assert.True(t, f.InConcealmentZone(-12, -10), "left aisle")
	assert.False(t, f.InConcealmentZone(-5, -5), "entry is not concealment")
	assert.False(t, f.InConcealmentZone(-19, -10), "mirrored aisle is not in the described room")
	assert.True(t, f.ConcealedAt(-19, -10), "mirrored aisle counts for concealment")
	assert.False(t, f.ConcealedAt(0, 0))

	// Concealment is a subset of the room interior
	for _, r := range f.Concealment {
		cx := (r.MinX + r.MaxX) / 2
		cz := (r.MinZ + r.MaxZ) / 2
		assert.True(t, f.InRoomInterior(cx, cz))
	}
}

func TestExtentCoversBothRooms(t *testing.T) {
	f := DefaultFloorPlan()
	ext := f.Extent()

	assert.InDelta(t, -26.75, ext.MinX, 1e-9)
	assert.InDelta(t, 0.65, ext.MaxX, 1e-9)
	assert.InDelta(t, -22.5, ext.MinZ, 1e-9)
	assert.InDelta(t, 0.65, ext.MaxZ, 1e-9)
}
