// Package space classifies floor-plan positions against the machine room layout
// All predicates are pure; rooms are described once and the mirrored room is
// queried by translating the point, never by a second copy of the rectangles
package space

import (
	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// FloorPlan holds the rectangle sets of the corridor and of one room
type FloorPlan struct {
	Corridor    []core.Rect
	Doors       []core.Rect
	Entry       []core.Rect
	Concealment []core.Rect

	// MirrorOffset translates a point in the mirrored room onto the described room
	MirrorOffset float64

	Grid PointGrid
}

// DefaultFloorPlan returns the machine room layout
func DefaultFloorPlan() *FloorPlan {
	return &FloorPlan{
		Corridor: []core.Rect{
			core.R(parameter.CorridorMinX, parameter.CorridorMinZ, parameter.CorridorMaxX, parameter.CorridorMaxZ),
		},
		Doors: []core.Rect{
			core.R(parameter.DoorRightMinX, parameter.DoorMinZ, parameter.DoorRightMaxX, parameter.DoorMaxZ),
			core.R(parameter.DoorLeftMinX, parameter.DoorMinZ, parameter.DoorLeftMaxX, parameter.DoorMaxZ),
		},
		Entry: []core.Rect{
			core.R(parameter.EntryMinX, parameter.EntryMinZ, parameter.EntryMaxX, parameter.EntryMaxZ),
		},
		Concealment: []core.Rect{
			core.R(parameter.AisleRightMinX, parameter.AisleMinZ, parameter.AisleRightMaxX, parameter.AisleMaxZ),
			core.R(parameter.AisleCenterMinX, parameter.AisleMinZ, parameter.AisleCenterMaxX, parameter.AisleMaxZ),
			core.R(parameter.AisleLeftMinX, parameter.AisleMinZ, parameter.AisleLeftMaxX, parameter.AisleMaxZ),
		},
		MirrorOffset: parameter.RoomMirrorOffset,
		Grid:         DefaultPointGrid(),
	}
}

// InMovementBounds reports whether the player may stand at (x, z)
func (f *FloorPlan) InMovementBounds(x, z float64) bool {
	return core.AnyContains(f.Corridor, x, z) ||
		f.InRoomInterior(x, z) ||
		f.InMirroredRoom(x, z)
}

// InRoomInterior reports whether (x, z) is inside the described room
func (f *FloorPlan) InRoomInterior(x, z float64) bool {
	return core.AnyContains(f.Doors, x, z) ||
		core.AnyContains(f.Entry, x, z) ||
		f.InConcealmentZone(x, z)
}

// InMirroredRoom reports whether (x, z) is inside the mirrored room
func (f *FloorPlan) InMirroredRoom(x, z float64) bool {
	return f.InRoomInterior(x+f.MirrorOffset, z)
}

// InConcealmentZone reports whether (x, z) is in an aisle of the described room
func (f *FloorPlan) InConcealmentZone(x, z float64) bool {
	return core.AnyContains(f.Concealment, x, z)
}

// ConcealedAt reports whether (x, z) is in an aisle of either room
func (f *FloorPlan) ConcealedAt(x, z float64) bool {
	return f.InConcealmentZone(x, z) || f.InConcealmentZone(x+f.MirrorOffset, z)
}

// Extent returns the bounding rectangle of everything walkable, both rooms included
func (f *FloorPlan) Extent() core.Rect {
	var rects []core.Rect
	rects = append(rects, f.Corridor...)
	for _, set := range [][]core.Rect{f.Doors, f.Entry, f.Concealment} {
		for _, r := range set {
			rects = append(rects, r, r.Translate(-f.MirrorOffset, 0))
		}
	}
	if len(rects) == 0 {
		return core.Rect{}
	}
	ext := rects[0]
	for _, r := range rects[1:] {
		ext = ext.Union(r)
	}
	return ext
}
