// internal/system/collision.go
package system

import (
	"log"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/physics"
)

// CollisionSystem двигает пули и врагов, разрешает столкновения и начисляет очки.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
	progression     *ProgressionSystem
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher, movement *MovementSystem, progression *ProgressionSystem) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		movement:        movement,
		progression:     progression,
	}
}

// UpdateBullets sweeps bullets newest to oldest. Each bullet moves, leaves
// if it is off screen, and otherwise damages the newest enemy it overlaps.
// A bullet hits at most one enemy.
func (s *CollisionSystem) UpdateBullets() {
	w := s.world
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := w.Bullets[i]
		if b.Destroyed {
			continue
		}
		s.movement.StepBullet(b)
		if physics.OutOfBounds(b.Body.Position, b.Body.Size, w.Width, w.Height) {
			b.Destroy()
			continue
		}

		for j := len(w.Enemies) - 1; j >= 0; j-- {
			e := w.Enemies[j]
			if e.Destroyed || !physics.AABBOverlap(b.Bounds(), e.Bounds()) {
				continue
			}
			s.hitEnemy(b, e)
			break
		}
	}
}

func (s *CollisionSystem) hitEnemy(b, e *entity.Entity) {
	damage := config.BulletDamage
	if b.Projectile != nil {
		damage = b.Projectile.Damage
	}
	killed := e.TakeDamage(damage)
	b.Destroy()

	data := event.EnemyData{
		ID:       e.ID,
		Class:    e.Enemy.Class,
		Position: e.Center(),
		Points:   e.Enemy.Points,
	}
	if !killed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: data})
		return
	}
	s.progression.AddScore(e.Enemy.Points)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}

// UpdateEnemies moves enemies oldest to newest, drops the ones that left
// the screen and applies contact damage to the player.
func (s *CollisionSystem) UpdateEnemies() {
	w := s.world
	player := w.Player
	for _, e := range w.Enemies {
		if e.Destroyed {
			continue
		}
		s.movement.StepEnemy(e)
		if physics.OutOfBounds(e.Body.Position, e.Body.Size, w.Width, w.Height) {
			e.Destroy()
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDespawned, Data: event.EnemyData{
				ID:       e.ID,
				Class:    e.Enemy.Class,
				Position: e.Center(),
			}})
			continue
		}
		if !player.Alive() {
			continue
		}
		if physics.CirclesOverlap(player.Center(), player.Radius(), e.Center(), e.Radius()) {
			s.damagePlayer()
		}
	}
}

// damagePlayer applies contact damage unless the shared cooldown is still running.
func (s *CollisionSystem) damagePlayer() {
	w := s.world
	player := w.Player
	state := player.Player
	if !state.Contact.Ready(w.GameTime, config.DamageCooldown) {
		return
	}
	state.Contact.Trigger(w.GameTime)

	lethal := player.TakeDamage(config.PlayerContactDamage)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{
		Damage:  config.PlayerContactDamage,
		Current: player.Health.Current,
		Max:     player.Health.Max,
	}})
	if !lethal {
		return
	}

	w.GameOver = true
	log.Printf("Game over: score %d, level %d", w.Progress.Score, w.Progress.Level)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
		Score: w.Progress.Score,
		Level: w.Progress.Level,
	}})
}
