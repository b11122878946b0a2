// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог забега. Выход только через рестарт или меню.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	restart *ui.Button
	menu    *ui.Button
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	face := sm.Ctx.Fonts.Regular
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	return &GameOverState{
		sm:      sm,
		game:    gs,
		restart: ui.NewButton(cx-110, cy+40, 220, 50, "Play again", face),
		menu:    ui.NewButton(cx-110, cy+110, 220, 50, "Main menu", face),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) || s.restart.IsClicked() {
		s.game.Restart()
		s.sm.SetState(s.game)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.menu.IsClicked() {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.game.renderer.DrawOverlay(screen)

	snap := s.game.game.Snapshot()
	fonts := s.sm.Ctx.Fonts
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GAME OVER", fonts.Title, cx, cy-90, config.HealthLowColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score: %d   Level: %d", snap.Progress.Score, snap.Progress.Level), fonts.Regular, cx, cy-20, config.TextLightColor)
	s.restart.Draw(screen)
	s.menu.Draw(screen)
}

func (s *GameOverState) Exit() {}
