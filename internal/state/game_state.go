// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/system"
	"go-swarm-shooter/internal/ui"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	effects  *system.VisualEffectSystem
	renderer *render.Renderer
	capture  *inputCapture

	pauseButton     *ui.PauseButton
	levelIndicator  *ui.PlayerLevelIndicator
	healthIndicator *ui.PlayerHealthIndicator
	weaponIndicator *ui.WeaponIndicator
}

func NewGameState(sm *StateMachine) *GameState {
	ctx := sm.Ctx
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(ctx.seed())
	log.Printf("new run, seed %d", rng.Seed())

	gameLogic := game.NewGame(config.ScreenWidth, config.ScreenHeight, rng, dispatcher)
	effects := system.NewVisualEffectSystem(gameLogic.World, dispatcher)
	if ctx.Sound != nil {
		ctx.Sound.Subscribe(dispatcher)
	}

	fonts := ctx.Fonts
	gs := &GameState{
		sm:              sm,
		game:            gameLogic,
		effects:         effects,
		renderer:        render.NewRenderer(effects, render.DefaultPalette()),
		capture:         newInputCapture(),
		pauseButton:     ui.NewPauseButton(config.ScreenWidth-40, 40, 12, config.TextLightColor, config.TextLightColor),
		levelIndicator:  ui.NewPlayerLevelIndicator(20, 16, fonts.Regular),
		healthIndicator: ui.NewPlayerHealthIndicator(20, 70, fonts.Small),
		weaponIndicator: ui.NewWeaponIndicator(30, 150, config.IndicatorRadius/2, fonts.Small),
	}
	dispatcher.Subscribe(event.WeaponUpgraded, event.ListenerFunc(func(event.Event) {
		gs.weaponIndicator.Pulse()
	}))
	return gs
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pauseClicked() {
		g.pause()
		return
	}

	in := g.capture.Capture(config.ScreenWidth)
	g.game.Tick(in, dt)
	g.effects.Update(dt)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return g.pauseButton.Contains(ebiten.CursorPosition())
}

func (g *GameState) pause() {
	g.capture.Reset()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// Restart начинает новый забег в том же состоянии.
func (g *GameState) Restart() {
	g.game.Reset()
	g.capture.Reset()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.capture.Draw(screen)

	p := snap.Progress
	g.levelIndicator.Draw(screen, p.Score, p.Level, p.CurrentLevelScore, p.PointsNeeded, p.GameSpeed)
	g.healthIndicator.Draw(screen, snap.Player.Health, snap.Player.MaxHealth)
	g.weaponIndicator.Draw(screen, snap.Upgrades.BulletCount, snap.Upgrades.FireRate)
	g.pauseButton.SetPaused(snap.Paused)
	g.pauseButton.Draw(screen)

	if s := g.sm.Ctx.Settings; s != nil && s.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 20, config.ScreenHeight-24)
	}
}

func (g *GameState) Exit() {}
