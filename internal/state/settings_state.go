// internal/state/settings_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/ui"
)

var _ State = (*SettingsState)(nil)

// SettingsState — экран настроек. Каждое изменение сразу сохраняется.
type SettingsState struct {
	sm    *StateMachine
	sound *ui.ToggleButton
	music *ui.ToggleButton
	fps   *ui.ToggleButton
	back  *ui.Button
}

func NewSettingsState(sm *StateMachine) *SettingsState {
	face := sm.Ctx.Fonts.Regular
	s := sm.Ctx.Settings
	x := float32(config.ScreenWidth)/2 - 150
	y := float32(config.ScreenHeight)/2 - 100
	const w, h, gap = 300, 54, 70
	return &SettingsState{
		sm:    sm,
		sound: ui.NewToggleButton(x, y, w, h, "Sound", s.SoundEnabled, face),
		music: ui.NewToggleButton(x, y+gap, w, h, "Music", s.MusicEnabled, face),
		fps:   ui.NewToggleButton(x, y+2*gap, w, h, "Show FPS", s.ShowFPS, face),
		back:  ui.NewButton(x, y+3*gap+20, w, h, "Back", face),
	}
}

func (s *SettingsState) Enter() {}

func (s *SettingsState) Update(deltaTime float64) {
	cfg := s.sm.Ctx.Settings
	changed := false
	if s.sound.Update() {
		cfg.ToggleSound()
		changed = true
	}
	if s.music.Update() {
		cfg.ToggleMusic()
		changed = true
	}
	if s.fps.Update() {
		cfg.ShowFPS = s.fps.On
		changed = true
	}
	if changed {
		if err := cfg.Save(); err != nil {
			log.Printf("settings: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.back.IsClicked() {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "SETTINGS", s.sm.Ctx.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-200, config.TextLightColor)
	s.sound.Draw(screen)
	s.music.Draw(screen)
	s.fps.Draw(screen)
	s.back.Draw(screen)
}

func (s *SettingsState) Exit() {}
