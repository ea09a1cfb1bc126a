package core

import "math"

// Pose is the player position and facing in floor-plan space
// Y is eye height; it is cosmetic and never used for gating
type Pose struct {
	X, Y, Z float64
	Yaw     float64 // Radians, 0 faces -Z
}

// Translated returns the pose moved by dx, dz with height and facing unchanged
func (p Pose) Translated(dx, dz float64) Pose {
	p.X += dx
	p.Z += dz
	return p
}

// DistanceTo returns the planar distance between two poses
func (p Pose) DistanceTo(o Pose) float64 {
	return math.Hypot(p.X-o.X, p.Z-o.Z)
}
