package system

import (
	"math"
	"testing"

	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/pkg/vecmath"
)

func TestUpdatePlayerMovesAndClamps(t *testing.T) {
	tests := []struct {
		name  string
		start vecmath.Vec2
		move  vecmath.Vec2
		ticks int
		want  vecmath.Vec2
	}{
		{"Right", vecmath.Vec2{X: 400, Y: 300}, vecmath.Vec2{X: 1}, 2, vecmath.Vec2{X: 410, Y: 300}},
		{"NoInput", vecmath.Vec2{X: 400, Y: 300}, vecmath.Vec2{}, 10, vecmath.Vec2{X: 400, Y: 300}},
		{"ClampLeft", vecmath.Vec2{X: 30, Y: 300}, vecmath.Vec2{X: -1}, 5, vecmath.Vec2{X: 25, Y: 300}},
		{"ClampBottomRight", vecmath.Vec2{X: 770, Y: 570}, vecmath.Vec2{X: 1, Y: 1}, 20, vecmath.Vec2{X: 775, Y: 575}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newTestWorld()
			w.Player.Body.Position = tt.start
			s := NewMovementSystem(w)
			for i := 0; i < tt.ticks; i++ {
				s.UpdatePlayer(input.State{Move: tt.move})
			}
			got := w.Player.Body.Position
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdatePlayerFacesTargetWhenShooting(t *testing.T) {
	w, _, _ := newTestWorld()
	s := NewMovementSystem(w)
	target := w.Player.Body.Position.Add(vecmath.Vec2{X: 100})

	for i := 0; i < 60; i++ {
		s.UpdatePlayer(input.State{Shooting: true, Target: target})
	}
	if f := w.Player.Player.Facing; math.Abs(f) > 1e-3 {
		t.Errorf("facing = %v, want ~0", f)
	}
	if w.Player.Player.Moving {
		t.Error("player without move input reported as moving")
	}
}
