package parameter

// Floor plan of the machine room, in world units on the x/z plane
// The corridor runs along x; two identical rooms open to its -z side
// The left room is the right room shifted by -RoomMirrorOffset on x
const RoomMirrorOffset = 14.0

// Corridor
const (
	CorridorMinX = -25.0
	CorridorMaxX = 0.65
	CorridorMinZ = -2.65
	CorridorMaxZ = 0.65
)

// Doorways between corridor and room entry
const (
	DoorMinZ = -3.35
	DoorMaxZ = -2.65

	DoorRightMinX = -2.35
	DoorRightMaxX = -1.55
	DoorLeftMinX  = -10.55
	DoorLeftMaxX  = -9.55
)

// Room entry strip in front of the desks
const (
	EntryMinX = -12.75
	EntryMaxX = 0.55
	EntryMinZ = -7.0
	EntryMaxZ = -3.35
)

// Aisles between desk rows, where the player can hide and reach computers
const (
	AisleMinZ = -22.5
	AisleMaxZ = -7.0

	AisleRightMinX  = -0.85
	AisleRightMaxX  = 0.55
	AisleCenterMinX = -8.8
	AisleCenterMaxX = -3.1
	AisleLeftMinX   = -12.75
	AisleLeftMaxX   = -11.25
)
