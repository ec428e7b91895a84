package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector in world units
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Min returns the component-wise minimum
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// YawExtent rotates a size vector about Z by yaw degrees and returns the axis-aligned extent
// Only quarter turns are exact; other angles return the enclosing extent
func YawExtent(size Vec3, yawDeg float64) Vec3 {
	rad := yawDeg * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	// Snap float noise so quarter turns swap X/Y exactly
	if c < 1e-9 {
		c = 0
	}
	if s < 1e-9 {
		s = 0
	}
	return Vec3{
		X: size.X*c + size.Y*s,
		Y: size.X*s + size.Y*c,
		Z: size.Z,
	}
}
