package core

// Rect is an axis-aligned floor-plan rectangle in x/z space
// Bounds are exclusive on every side; a point on an edge is outside
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// R builds a Rect from its x and z extents
func R(minX, minZ, maxX, maxZ float64) Rect {
	return Rect{MinX: minX, MinZ: minZ, MaxX: maxX, MaxZ: maxZ}
}

// Contains reports whether (x, z) lies strictly inside the rectangle
func (r Rect) Contains(x, z float64) bool {
	return x > r.MinX && z > r.MinZ && x < r.MaxX && z < r.MaxZ
}

// Translate returns a copy shifted by dx, dz
func (r Rect) Translate(dx, dz float64) Rect {
	return Rect{MinX: r.MinX + dx, MinZ: r.MinZ + dz, MaxX: r.MaxX + dx, MaxZ: r.MaxZ + dz}
}

// Width returns the x extent
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Depth returns the z extent
func (r Rect) Depth() float64 {
	return r.MaxZ - r.MinZ
}

// Union returns the smallest rectangle covering both
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinZ: min(r.MinZ, o.MinZ),
		MaxX: max(r.MaxX, o.MaxX),
		MaxZ: max(r.MaxZ, o.MaxZ),
	}
}

// AnyContains reports whether any rectangle in rs contains (x, z)
func AnyContains(rs []Rect, x, z float64) bool {
	for _, r := range rs {
		if r.Contains(x, z) {
			return true
		}
	}
	return false
}
