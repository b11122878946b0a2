// internal/ui/menu_button.go
package ui

import "golang.org/x/image/font"

// ToggleButton is a menu button that shows an on/off state, e.g. "Sound: ON".
type ToggleButton struct {
	*Button
	Label string
	On    bool
}

// NewToggleButton создает новую кнопку-переключатель.
func NewToggleButton(x, y, w, h float32, label string, on bool, face font.Face) *ToggleButton {
	tb := &ToggleButton{
		Button: NewButton(x, y, w, h, "", face),
		Label:  label,
		On:     on,
	}
	tb.refresh()
	return tb
}

// Update flips the toggle when clicked and reports whether it did.
func (t *ToggleButton) Update() bool {
	if !t.IsClicked() {
		return false
	}
	t.On = !t.On
	t.refresh()
	return true
}

func (t *ToggleButton) Set(on bool) {
	t.On = on
	t.refresh()
}

func (t *ToggleButton) refresh() {
	state := "OFF"
	if t.On {
		state = "ON"
	}
	t.Text = t.Label + ": " + state
}
