package system

import (
	"math"
	"testing"
	"time"

	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/pkg/vecmath"
)

func newCollisionSystem() (*CollisionSystem, *eventLog) {
	w, d, log := newTestWorld()
	m := NewMovementSystem(w)
	p := NewProgressionSystem(w, d)
	return NewCollisionSystem(w, d, m, p), log
}

func TestBulletLeavesScreenAfterExpectedTicks(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dir       vecmath.Vec2
		speed     float64
		size      float64
		wantTicks int
	}{
		{"Up", 100, 100, vecmath.Vec2{X: 0, Y: -1}, 8, 5, int(math.Ceil((100 + 5) / 8.0))},
		{"UpFast", 100, 100, vecmath.Vec2{X: 0, Y: -1}, 12, 5, int(math.Ceil((100 + 5) / 12.0))},
		{"Right", 700, 300, vecmath.Vec2{X: 1, Y: 0}, 8, 5, int(math.Ceil((800 - 700 + 5) / 8.0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newCollisionSystem()
			w := s.world
			addBullet(w, tt.x, tt.y, tt.dir, tt.speed, tt.size)

			ticks := 0
			for len(w.Bullets) > 0 && ticks < 1000 {
				s.UpdateBullets()
				w.Compact()
				ticks++
			}
			if ticks != tt.wantTicks {
				t.Errorf("bullet removed after %d ticks, want %d", ticks, tt.wantTicks)
			}
		})
	}
}

func TestBulletHitsNewestEnemyOnly(t *testing.T) {
	s, log := newCollisionSystem()
	w := s.world

	older := addEnemy(w, defs.EnemyLight, 80, 60, 40, vecmath.Vec2{}, 0)
	newer := addEnemy(w, defs.EnemyLight, 80, 60, 40, vecmath.Vec2{}, 0)
	bullet := addBullet(w, 100, 100, vecmath.Vec2{X: 0, Y: -1}, 8, 5)

	s.UpdateBullets()

	if !bullet.Destroyed {
		t.Error("bullet should be destroyed on hit")
	}
	if !newer.Destroyed || older.Destroyed {
		t.Errorf("newer destroyed=%v older destroyed=%v", newer.Destroyed, older.Destroyed)
	}
	if w.Progress.Score != 30 {
		t.Errorf("score = %d, want 30", w.Progress.Score)
	}
	if log.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled = %d", log.count(event.EnemyKilled))
	}

	w.Compact()
	if len(w.Enemies) != 1 || w.Enemies[0] != older {
		t.Error("killed enemy not removed from the active list")
	}
}

func TestNonLethalHitAwardsNothing(t *testing.T) {
	s, log := newCollisionSystem()
	w := s.world

	heavy := addEnemy(w, defs.EnemyHeavy, 70, 50, 60, vecmath.Vec2{}, 0)
	addBullet(w, 100, 100, vecmath.Vec2{X: 0, Y: -1}, 8, 5)

	s.UpdateBullets()

	if heavy.Destroyed || heavy.Health.Current != 2 {
		t.Errorf("heavy: destroyed=%v hp=%d", heavy.Destroyed, heavy.Health.Current)
	}
	if w.Progress.Score != 0 {
		t.Errorf("score = %d, want 0", w.Progress.Score)
	}
	if log.count(event.EnemyDamaged) != 1 {
		t.Errorf("EnemyDamaged = %d", log.count(event.EnemyDamaged))
	}
}

func TestNoPhantomHitOnEnemyKilledThisTick(t *testing.T) {
	s, _ := newCollisionSystem()
	w := s.world

	addEnemy(w, defs.EnemyLight, 80, 60, 40, vecmath.Vec2{}, 0)
	first := addBullet(w, 100, 100, vecmath.Vec2{X: 0, Y: -1}, 8, 5)
	second := addBullet(w, 100, 100, vecmath.Vec2{X: 0, Y: -1}, 8, 5)

	s.UpdateBullets()

	if !second.Destroyed {
		t.Error("newest bullet should have hit first")
	}
	if first.Destroyed {
		t.Error("older bullet hit an enemy that was already destroyed")
	}
	if w.Progress.Score != 30 {
		t.Errorf("score = %d, want 30", w.Progress.Score)
	}
}

func TestEnemyDespawnGivesNoScore(t *testing.T) {
	s, log := newCollisionSystem()
	w := s.world

	e := addEnemy(w, defs.EnemyLight, -35, 100, 35, vecmath.Vec2{X: -1, Y: 0}, 2)
	s.UpdateEnemies()

	if !e.Destroyed {
		t.Fatalf("enemy at %v should be out of bounds", e.Body.Position)
	}
	if w.Progress.Score != 0 || log.count(event.EnemyDespawned) != 1 || log.count(event.EnemyKilled) != 0 {
		t.Errorf("score=%d despawned=%d killed=%d", w.Progress.Score,
			log.count(event.EnemyDespawned), log.count(event.EnemyKilled))
	}
}

func TestEnemyMovesWithGameSpeed(t *testing.T) {
	s, _ := newCollisionSystem()
	w := s.world
	w.Progress.GameSpeed = 1.5

	e := addEnemy(w, defs.EnemyLight, 100, 100, 30, vecmath.Vec2{X: 1, Y: 0}, 2)
	s.UpdateEnemies()

	if e.Body.Position.X != 103 {
		t.Errorf("x = %v, want 103", e.Body.Position.X)
	}
}

func TestSameTickContactsDamagePlayerOnce(t *testing.T) {
	s, log := newCollisionSystem()
	w := s.world
	c := w.Player.Center()

	addEnemy(w, defs.EnemyLight, c.X-20, c.Y-20, 40, vecmath.Vec2{}, 0)
	addEnemy(w, defs.EnemyMedium, c.X-25, c.Y-25, 50, vecmath.Vec2{}, 0)

	s.UpdateEnemies()

	if got := w.Player.Health.Current; got != 90 {
		t.Errorf("player health = %d, want 90", got)
	}
	if log.count(event.PlayerDamaged) != 1 {
		t.Errorf("PlayerDamaged = %d, want 1", log.count(event.PlayerDamaged))
	}

	w.GameTime += 16 * time.Millisecond
	s.UpdateEnemies()
	if got := w.Player.Health.Current; got != 90 {
		t.Errorf("damage inside cooldown window: health = %d", got)
	}

	w.GameTime = 500 * time.Millisecond
	s.UpdateEnemies()
	if got := w.Player.Health.Current; got != 80 {
		t.Errorf("after cooldown health = %d, want 80", got)
	}
}

func TestLethalContactEndsGame(t *testing.T) {
	s, log := newCollisionSystem()
	w := s.world
	w.Player.Health.Current = 10
	c := w.Player.Center()

	addEnemy(w, defs.EnemyLight, c.X-15, c.Y-15, 30, vecmath.Vec2{}, 0)
	s.UpdateEnemies()

	if !w.GameOver {
		t.Fatal("game over flag not set")
	}
	if w.Player.Health.Current != 0 || !w.Player.Destroyed {
		t.Errorf("player hp=%d destroyed=%v", w.Player.Health.Current, w.Player.Destroyed)
	}
	if log.count(event.GameOver) != 1 {
		t.Errorf("GameOver events = %d", log.count(event.GameOver))
	}
}

func TestTouchingCirclesDoNotDamage(t *testing.T) {
	s, _ := newCollisionSystem()
	w := s.world
	c := w.Player.Center()

	// центр врага ровно на расстоянии 25+20 от игрока
	addEnemy(w, defs.EnemyLight, c.X+45-20, c.Y-20, 40, vecmath.Vec2{}, 0)
	s.UpdateEnemies()

	if w.Player.Health.Current != 100 {
		t.Errorf("touching circles dealt damage: hp=%d", w.Player.Health.Current)
	}
}
