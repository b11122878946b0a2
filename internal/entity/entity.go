// internal/entity/entity.go
package entity

import (
	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/physics"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/vecmath"
)

// Kind — тип сущности
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	}
	return "unknown"
}

// Entity is a simulated object. Optional components are nil when the kind
// does not carry them.
type Entity struct {
	ID   types.EntityID
	Kind Kind
	Body component.Body

	Health     *component.Health
	Enemy      *component.Enemy
	Projectile *component.Projectile
	Player     *component.PlayerStateComponent

	Destroyed bool
}

// Destroy marks the entity inert. It returns false if it already was.
func (e *Entity) Destroy() bool {
	if e.Destroyed {
		return false
	}
	e.Destroyed = true
	return true
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	return e != nil && !e.Destroyed
}

func (e *Entity) HasHealth() bool {
	return e.Health != nil
}

// TakeDamage applies damage to a health-bearing entity and destroys it on
// the lethal hit. Destroyed or health-less entities ignore the call.
func (e *Entity) TakeDamage(amount int) bool {
	if e.Destroyed || e.Health == nil {
		return false
	}
	if !e.Health.TakeDamage(amount) {
		return false
	}
	e.Destroy()
	return true
}

// Bounds returns the axis-aligned box of the entity. Destroyed entities
// return an empty rect.
func (e *Entity) Bounds() physics.Rect {
	if e.Destroyed {
		return physics.Rect{}
	}
	b := e.Body
	if b.Shape == component.ShapeBox {
		return physics.Rect{X: b.Position.X, Y: b.Position.Y, W: b.Size, H: b.Size}
	}
	return physics.Rect{X: b.Position.X - b.Size, Y: b.Position.Y - b.Size, W: 2 * b.Size, H: 2 * b.Size}
}

func (e *Entity) Center() vecmath.Vec2 {
	return e.Body.Center()
}

// Radius returns the collision radius; zero once destroyed.
func (e *Entity) Radius() float64 {
	if e.Destroyed {
		return 0
	}
	return e.Body.Radius()
}
