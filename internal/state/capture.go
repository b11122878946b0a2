// internal/state/capture.go
package state

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/internal/ui"
	"go-swarm-shooter/pkg/vecmath"
)

const joystickRadius = 60

// inputCapture собирает состояние клавиатуры, мыши и касаний в один input.State.
// Касание левой половины экрана управляет стиком, правой стреляет.
type inputCapture struct {
	joystick   *ui.Joystick
	stickTouch ebiten.TouchID
	hasStick   bool

	touches []ebiten.TouchID
	pressed []ebiten.TouchID
}

func newInputCapture() *inputCapture {
	return &inputCapture{joystick: ui.NewJoystick(joystickRadius)}
}

func (c *inputCapture) Capture(screenWidth int) input.State {
	keys := input.Keys{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	mx, my := ebiten.CursorPosition()
	mouse := input.Mouse{
		Position: vecmath.Vec2{X: float64(mx), Y: float64(my)},
		Pressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	touch := c.captureTouch(screenWidth)
	// Огонь касанием без движения стика идёт через «мышь»
	if touch.Shooting && !touch.Active() && !mouse.Pressed {
		mouse = input.Mouse{Position: touch.Target, Pressed: true}
	}
	return input.Merge(keys, touch, mouse)
}

func (c *inputCapture) captureTouch(screenWidth int) input.Touch {
	c.touches = ebiten.AppendTouchIDs(c.touches[:0])
	if c.hasStick && !slices.Contains(c.touches, c.stickTouch) {
		c.hasStick = false
		c.joystick.Release()
	}

	c.pressed = inpututil.AppendJustPressedTouchIDs(c.pressed[:0])
	for _, id := range c.pressed {
		x, y := ebiten.TouchPosition(id)
		if !c.hasStick && x < screenWidth/2 {
			c.stickTouch, c.hasStick = id, true
			c.joystick.Press(vecmath.Vec2{X: float64(x), Y: float64(y)})
		}
	}

	var t input.Touch
	for _, id := range c.touches {
		x, y := ebiten.TouchPosition(id)
		p := vecmath.Vec2{X: float64(x), Y: float64(y)}
		if c.hasStick && id == c.stickTouch {
			c.joystick.Drag(p)
			continue
		}
		t.Shooting = true
		t.Target = p
	}
	t.Move = c.joystick.Vector()
	return t
}

func (c *inputCapture) Draw(screen *ebiten.Image) {
	c.joystick.Draw(screen)
}

func (c *inputCapture) Reset() {
	c.hasStick = false
	c.joystick.Release()
}
