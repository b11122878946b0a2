// internal/physics/collision.go
package physics

import "go-swarm-shooter/pkg/vecmath"

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area. Empty rects never overlap anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// AABBOverlap reports whether a and b share positive area. Boxes that only
// touch along an edge do not overlap.
func AABBOverlap(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CirclesOverlap reports whether the centre distance is strictly less than
// the sum of radii.
func CirclesOverlap(c1 vecmath.Vec2, r1 float64, c2 vecmath.Vec2, r2 float64) bool {
	if r1 <= 0 || r2 <= 0 {
		return false
	}
	d := c2.Sub(c1)
	sum := r1 + r2
	return d.X*d.X+d.Y*d.Y < sum*sum
}

// OutOfBounds reports whether p lies outside [-margin, dim+margin] on either axis.
func OutOfBounds(p vecmath.Vec2, margin, width, height float64) bool {
	return p.X < -margin || p.X > width+margin ||
		p.Y < -margin || p.Y > height+margin
}

// Contain clamps a circle centre so the circle stays within [0, dim].
func Contain(p vecmath.Vec2, radius, width, height float64) vecmath.Vec2 {
	return vecmath.Vec2{
		X: vecmath.Clamp(p.X, radius, width-radius),
		Y: vecmath.Clamp(p.Y, radius, height-radius),
	}
}
