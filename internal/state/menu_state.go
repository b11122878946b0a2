// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState — главное меню
type MenuState struct {
	sm       *StateMachine
	play     *ui.Button
	settings *ui.Button
	about    *ui.Button
	exit     *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	face := sm.Ctx.Fonts.Regular
	x := float32(config.ScreenWidth)/2 - 130
	y := float32(config.ScreenHeight) / 2
	const w, h, gap = 260, 54, 70
	return &MenuState{
		sm:       sm,
		play:     ui.NewButton(x, y-gap, w, h, "Play", face),
		settings: ui.NewButton(x, y, w, h, "Settings", face),
		about:    ui.NewButton(x, y+gap, w, h, "About", face),
		exit:     ui.NewButton(x, y+2*gap, w, h, "Exit", face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter), m.play.IsClicked():
		m.sm.SetState(NewGameState(m.sm))
	case m.settings.IsClicked():
		m.sm.SetState(NewSettingsState(m.sm))
	case m.about.IsClicked():
		m.sm.SetState(NewAboutState(m.sm))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), m.exit.IsClicked():
		m.sm.Ctx.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "SWARM SHOOTER", m.sm.Ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-200, config.TextLightColor)
	m.play.Draw(screen)
	m.settings.Draw(screen)
	m.about.Draw(screen)
	m.exit.Draw(screen)
}

func (m *MenuState) Exit() {}
