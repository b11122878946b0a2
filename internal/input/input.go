// internal/input/input.go
package input

import (
	"math"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/pkg/vecmath"
)

// State is the input for one simulation tick. It is built once before the
// tick and never changes during it.
type State struct {
	Move     vecmath.Vec2 // каждая ось в [-1, 1], ноль означает отсутствие ввода
	Shooting bool
	Target   vecmath.Vec2 // точка прицеливания в экранных координатах
}

// Keys — нажатые клавиши направления
type Keys struct {
	Up, Down, Left, Right bool
}

// Vector converts pressed keys to a movement vector. Opposite keys cancel
// out and diagonals are normalized to unit length.
func (k Keys) Vector() vecmath.Vec2 {
	var v vecmath.Vec2
	if k.Up {
		v.Y--
	}
	if k.Down {
		v.Y++
	}
	if k.Left {
		v.X--
	}
	if k.Right {
		v.X++
	}
	return vecmath.NormalizeOr(v, vecmath.Vec2{})
}

// Touch — состояние виртуального джойстика и кнопки огня
type Touch struct {
	Move     vecmath.Vec2
	Shooting bool
	Target   vecmath.Vec2
}

// Active reports whether the stick is pushed past the deadzone on either axis.
func (t Touch) Active() bool {
	return math.Abs(t.Move.X) > config.TouchDeadzone || math.Abs(t.Move.Y) > config.TouchDeadzone
}

// Mouse is the pointer state for one tick.
type Mouse struct {
	Position vecmath.Vec2
	Pressed  bool
}

// Merge combines the devices into one tick's State. An active touch stick
// overrides the keyboard for movement and the touch fire state overrides
// the mouse. The devices are never mixed within a tick.
func Merge(keys Keys, touch Touch, mouse Mouse) State {
	if touch.Active() {
		return State{
			Move:     clampAxes(touch.Move),
			Shooting: touch.Shooting,
			Target:   touch.Target,
		}
	}
	return State{
		Move:     keys.Vector(),
		Shooting: mouse.Pressed,
		Target:   mouse.Position,
	}
}

func clampAxes(v vecmath.Vec2) vecmath.Vec2 {
	return vecmath.Vec2{
		X: vecmath.Clamp(v.X, -1, 1),
		Y: vecmath.Clamp(v.Y, -1, 1),
	}
}
