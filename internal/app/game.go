// internal/app/game.go
package app

import (
	"time"

	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/internal/system"
	"go-swarm-shooter/internal/utils"
)

// Game holds the simulation state of one run and the systems that advance it.
type Game struct {
	World             *entity.World
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService
	MovementSystem    *system.MovementSystem
	WeaponSystem      *system.WeaponSystem
	SpawnSystem       *system.SpawnSystem
	CollisionSystem   *system.CollisionSystem
	ProgressionSystem *system.ProgressionSystem
}

// NewGame initializes a new game instance on a width x height playfield.
// A nil rng is replaced by a time-seeded one, a nil dispatcher by an empty one.
func NewGame(width, height float64, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Game {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld(width, height)
	g := &Game{
		World:           world,
		EventDispatcher: dispatcher,
		Rng:             rng,
		MovementSystem:  system.NewMovementSystem(world),
		WeaponSystem:    system.NewWeaponSystem(world, dispatcher),
		SpawnSystem:     system.NewSpawnSystem(world, rng, dispatcher),
	}
	g.ProgressionSystem = system.NewProgressionSystem(world, dispatcher)
	g.CollisionSystem = system.NewCollisionSystem(world, dispatcher, g.MovementSystem, g.ProgressionSystem)
	return g
}

// Tick advances the simulation by one frame. Movement uses a fixed step per
// tick; dt only drives the game clock used by cooldowns. Paused or finished
// games do nothing.
func (g *Game) Tick(in input.State, dt time.Duration) {
	w := g.World
	if w.Paused || w.GameOver {
		return
	}
	if dt > 0 {
		w.GameTime += dt
	}

	g.MovementSystem.UpdatePlayer(in)
	if in.Shooting {
		g.WeaponSystem.TryFire(in.Target)
	}
	g.SpawnSystem.Update()
	g.CollisionSystem.UpdateBullets()
	g.CollisionSystem.UpdateEnemies()

	w.Compact()
}

// Reset starts a new run. It is the only way out of game over.
func (g *Game) Reset() {
	g.World.Reset()
	g.SpawnSystem.Reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}

func (g *Game) SetPaused(paused bool) {
	g.World.Paused = paused
}

func (g *Game) IsPaused() bool {
	return g.World.Paused
}

func (g *Game) IsGameOver() bool {
	return g.World.GameOver
}

// Resize changes the playfield. The player is pulled back inside the new bounds.
func (g *Game) Resize(width, height float64) {
	g.World.Resize(width, height)
	g.MovementSystem.UpdatePlayer(input.State{})
}
