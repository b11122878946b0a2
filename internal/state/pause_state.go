// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm     *StateMachine
	game   *GameState
	resume *ui.Button
	menu   *ui.Button
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	face := sm.Ctx.Fonts.Regular
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	return &PauseState{
		sm:     sm,
		game:   gs,
		resume: ui.NewButton(cx-110, cy+20, 220, 50, "Resume", face),
		menu:   ui.NewButton(cx-110, cy+90, 220, 50, "Main menu", face),
	}
}

func (s *PauseState) Enter() {
	s.game.game.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		s.resume.IsClicked() || s.game.pauseClicked() {
		// GameState.Enter снимет паузу
		s.sm.SetState(s.game)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || s.menu.IsClicked() {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.game.renderer.DrawOverlay(screen)

	fonts := s.sm.Ctx.Fonts
	ui.DrawCentered(screen, "PAUSED", fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-60, config.TextLightColor)
	s.resume.Draw(screen)
	s.menu.Draw(screen)
}

func (s *PauseState) Exit() {}
