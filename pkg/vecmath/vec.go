// pkg/vecmath/vec.go
package vecmath

import "math"

// Vec2 is a point or direction in screen space (pixels, +Y down).
type Vec2 struct {
	X, Y float64
}

// Up is the fallback direction used when a direction cannot be derived.
var Up = Vec2{X: 0, Y: -1}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length. A zero vector cannot be
// normalized, in which case ok is false and the zero vector is returned.
func Normalize(v Vec2) (n Vec2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// NormalizeOr normalizes v, falling back to def for a zero vector.
func NormalizeOr(v, def Vec2) Vec2 {
	if n, ok := Normalize(v); ok {
		return n
	}
	return def
}

// DirectionTo returns the unit vector pointing from "from" to "to".
// Coincident points yield Up.
func DirectionTo(from, to Vec2) Vec2 {
	return NormalizeOr(to.Sub(from), Up)
}

// Rotate applies a standard 2D rotation by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Distance returns the distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Angle returns the angle of v in radians, measured from +X.
func Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Lerp выполняет линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
