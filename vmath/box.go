package vmath

// Box is an axis-aligned bounding box, Min <= Max on every axis
type Box struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// NewBox builds a box spanning two corner points in any order
func NewBox(a, b Vec3) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

// BoxAt builds a box of the given size centered at c
func BoxAt(c, size Vec3) Box {
	half := size.Scale(0.5)
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// Intersects reports overlap on all three axes; touching faces count
func (b Box) Intersects(o Box) bool {
	if b.Min.X > o.Max.X || o.Min.X > b.Max.X {
		return false
	}
	if b.Min.Y > o.Max.Y || o.Min.Y > b.Max.Y {
		return false
	}
	if b.Min.Z > o.Max.Z || o.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// Center returns the box midpoint
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Translate offsets the box by d
func (b Box) Translate(d Vec3) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}
