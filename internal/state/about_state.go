// internal/state/about_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/ui"
)

var _ State = (*AboutState)(nil)

var aboutLines = []string{
	"Survive the swarm. Enemies come from every edge.",
	"",
	"WASD / arrows - move",
	"Hold left mouse button - shoot",
	"Touch: left half is the stick, right half fires",
	"P / Esc - pause",
	"",
	"Score grows the weapon: faster fire, more bullets,",
	"faster and bigger shots. Each level speeds the swarm up.",
}

type AboutState struct {
	sm   *StateMachine
	back *ui.Button
}

func NewAboutState(sm *StateMachine) *AboutState {
	x := float32(config.ScreenWidth)/2 - 130
	return &AboutState{
		sm:   sm,
		back: ui.NewButton(x, config.ScreenHeight-140, 260, 54, "Back", sm.Ctx.Fonts.Regular),
	}
}

func (s *AboutState) Enter() {}

func (s *AboutState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.back.IsClicked() {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *AboutState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := s.sm.Ctx.Fonts
	ui.DrawCentered(screen, "ABOUT", fonts.Title, config.ScreenWidth/2, 120, config.TextLightColor)
	for i, line := range aboutLines {
		ui.DrawCentered(screen, line, fonts.Regular, config.ScreenWidth/2, 240+i*34, config.TextLightColor)
	}
	s.back.Draw(screen)
}

func (s *AboutState) Exit() {}
