package physics

import (
	"testing"

	"go-swarm-shooter/pkg/vecmath"
)

func TestAABBOverlap(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"Overlapping", Rect{5, 5, 10, 10}, true},
		{"Contained", Rect{2, 2, 2, 2}, true},
		{"TouchRightEdge", Rect{10, 0, 10, 10}, false},
		{"TouchBottomEdge", Rect{0, 10, 10, 10}, false},
		{"TouchCorner", Rect{10, 10, 5, 5}, false},
		{"Disjoint", Rect{30, 30, 5, 5}, false},
		{"SeparatedOnOneAxis", Rect{5, 20, 5, 5}, false},
		{"ZeroArea", Rect{5, 5, 0, 0}, false},
		{"ZeroWidthInside", Rect{5, 5, 0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AABBOverlap(base, tt.b); got != tt.want {
				t.Errorf("AABBOverlap(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
			if got := AABBOverlap(tt.b, base); got != tt.want {
				t.Errorf("not symmetric for %v", tt.b)
			}
		})
	}
}

func TestCirclesOverlapIsStrict(t *testing.T) {
	c1 := vecmath.Vec2{X: 0, Y: 0}
	r1, r2 := 25.0, 15.0

	exact := vecmath.Vec2{X: r1 + r2, Y: 0}
	if CirclesOverlap(c1, r1, exact, r2) {
		t.Error("circles exactly r1+r2 apart must not collide")
	}

	closer := vecmath.Vec2{X: r1 + r2 - 1e-6, Y: 0}
	if !CirclesOverlap(c1, r1, closer, r2) {
		t.Error("circles just inside r1+r2 must collide")
	}

	if CirclesOverlap(c1, 0, c1, r2) {
		t.Error("zero radius must never collide")
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		p    vecmath.Vec2
		want bool
	}{
		{vecmath.Vec2{X: 50, Y: 50}, false},
		{vecmath.Vec2{X: -5, Y: 50}, false},
		{vecmath.Vec2{X: -5.1, Y: 50}, true},
		{vecmath.Vec2{X: 105, Y: 50}, false},
		{vecmath.Vec2{X: 50, Y: 105.5}, true},
	}
	for _, tt := range tests {
		if got := OutOfBounds(tt.p, 5, 100, 100); got != tt.want {
			t.Errorf("OutOfBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestContain(t *testing.T) {
	got := Contain(vecmath.Vec2{X: -40, Y: 900}, 25, 800, 600)
	if got.X != 25 || got.Y != 575 {
		t.Errorf("Contain = %v, want (25,575)", got)
	}
}
