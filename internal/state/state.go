// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-swarm-shooter/internal/assets"
	"go-swarm-shooter/internal/audio"
	"go-swarm-shooter/internal/settings"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — общие для всех состояний ресурсы
type Context struct {
	Fonts    *assets.Library
	Settings *settings.Settings
	Sound    *audio.SoundManager
	Seed     int64 // сид из командной строки, 0 — брать из настроек

	quit bool
}

// Quit asks the application to terminate after the current frame.
func (c *Context) Quit() { c.quit = true }

func (c *Context) Quitting() bool { return c.quit }

// seed returns the command-line seed if set, otherwise the configured one.
func (c *Context) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	if c.Settings != nil {
		return c.Settings.Seed
	}
	return 0
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Ctx     *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
