// internal/utils/math.go
package utils

import "math"

// Vec2 is a point or displacement in simulation space (y grows downwards).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2         { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2         { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2    { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64            { return math.Hypot(v.X, v.Y) }
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// FromAngle returns a vector of the given length pointing at angle degrees.
func FromAngle(degrees, length float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Cos(rad) * length, math.Sin(rad) * length}
}

// Rotation returns the angle in degrees of the segment from -> to.
func Rotation(from, to Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// NormalizeAngle maps an angle in degrees into [-180, 180).
func NormalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}

// ShortestRotation returns the signed rotation that brings current onto target
// along the shorter arc.
func ShortestRotation(current, target float64) float64 {
	return NormalizeAngle(target - current)
}

// Signum returns -1, 0 or 1.
func Signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Lerp performs plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
