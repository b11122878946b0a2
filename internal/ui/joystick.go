// internal/ui/joystick.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/pkg/vecmath"
)

// Joystick: виртуальный стик для сенсорного ввода. Появляется там,
// где палец коснулся левой половины экрана.
type Joystick struct {
	Radius float64
	Origin vecmath.Vec2
	Knob   vecmath.Vec2
	Active bool
}

func NewJoystick(radius float64) *Joystick {
	return &Joystick{Radius: radius}
}

// Press anchors the stick at p.
func (j *Joystick) Press(p vecmath.Vec2) {
	j.Origin = p
	j.Knob = p
	j.Active = true
}

// Drag moves the knob, keeping it within Radius of the origin.
func (j *Joystick) Drag(p vecmath.Vec2) {
	if !j.Active {
		return
	}
	d := p.Sub(j.Origin)
	if l := d.Len(); l > j.Radius {
		d = d.Scale(j.Radius / l)
	}
	j.Knob = j.Origin.Add(d)
}

func (j *Joystick) Release() {
	j.Active = false
	j.Knob = j.Origin
}

// Vector returns the knob offset scaled to [-1, 1] per axis.
func (j *Joystick) Vector() vecmath.Vec2 {
	if !j.Active || j.Radius <= 0 {
		return vecmath.Vec2{}
	}
	return j.Knob.Sub(j.Origin).Scale(1 / j.Radius)
}

func (j *Joystick) Draw(screen *ebiten.Image) {
	if !j.Active {
		return
	}
	vector.StrokeCircle(screen, float32(j.Origin.X), float32(j.Origin.Y), float32(j.Radius), 2, config.IndicatorStroke, true)
	vector.DrawFilledCircle(screen, float32(j.Knob.X), float32(j.Knob.Y), float32(j.Radius/3), config.ButtonHoverColor, true)
}
