// internal/tty/keys.go
package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-swarm-shooter/internal/input"
)

// Терминал не сообщает об отпускании клавиш, поэтому нажатие
// считается удерживаемым ещё keyHold после последнего повтора.
const keyHold = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// directionOf maps arrows and WASD to a direction.
func directionOf(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return dirUp, true
		case 's', 'S':
			return dirDown, true
		case 'a', 'A':
			return dirLeft, true
		case 'd', 'D':
			return dirRight, true
		}
	}
	return 0, false
}

type heldKeys struct {
	pressed map[direction]time.Time
	hold    time.Duration
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{pressed: make(map[direction]time.Time), hold: hold}
}

func (h *heldKeys) Press(d direction, now time.Time) {
	h.pressed[d] = now
}

func (h *heldKeys) held(d direction, now time.Time) bool {
	t, ok := h.pressed[d]
	return ok && now.Sub(t) < h.hold
}

// Keys returns the directions still considered held at now.
func (h *heldKeys) Keys(now time.Time) input.Keys {
	return input.Keys{
		Up:    h.held(dirUp, now),
		Down:  h.held(dirDown, now),
		Left:  h.held(dirLeft, now),
		Right: h.held(dirRight, now),
	}
}

func (h *heldKeys) Clear() {
	clear(h.pressed)
}
