package system

import (
	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/pkg/vecmath"
)

const (
	testWidth  = 800
	testHeight = 600
)

// eventLog records every dispatched event of the subscribed types.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*entity.World, *event.Dispatcher, *eventLog) {
	w := entity.NewWorld(testWidth, testHeight)
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log,
		event.ScoreAdded, event.LevelUp, event.WeaponUpgraded, event.ShotFired,
		event.EnemySpawned, event.EnemyDamaged, event.EnemyKilled, event.EnemyDespawned,
		event.PlayerDamaged, event.GameOver,
	)
	return w, d, log
}

func addEnemy(w *entity.World, class defs.EnemyClass, x, y, size float64, dir vecmath.Vec2, speed float64) *entity.Entity {
	def := defs.EnemyDefs[class]
	e := &entity.Entity{
		Body: component.Body{
			Position:  vecmath.Vec2{X: x, Y: y},
			Direction: dir,
			Speed:     speed,
			Shape:     component.ShapeBox,
			Size:      size,
		},
		Health: component.NewHealth(def.Health),
		Enemy:  &component.Enemy{Class: class, Points: def.Points, Color: def.Color},
	}
	w.AddEnemy(e)
	return e
}

func addBullet(w *entity.World, x, y float64, dir vecmath.Vec2, speed, size float64) *entity.Entity {
	b := &entity.Entity{
		Body: component.Body{
			Position:  vecmath.Vec2{X: x, Y: y},
			Direction: dir,
			Speed:     speed,
			Shape:     component.ShapeCircle,
			Size:      size,
		},
		Projectile: &component.Projectile{Damage: 1},
	}
	w.AddBullet(b)
	return b
}
