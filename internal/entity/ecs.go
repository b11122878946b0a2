// internal/entity/ecs.go
package entity

import (
	"math"
	"time"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/vecmath"
)

// World owns every live entity plus the progression state of one run.
// Lists only grow during a tick; Compact drops destroyed entries afterwards.
type World struct {
	GameTime time.Duration
	NextID   types.EntityID
	Width    float64
	Height   float64

	Player  *Entity
	Enemies []*Entity
	Bullets []*Entity

	Progress *component.GameProgress
	Upgrades *component.WeaponUpgrades

	GameOver bool
	Paused   bool
}

func NewWorld(width, height float64) *World {
	w := &World{Width: width, Height: height}
	w.Reset()
	return w
}

// Reset discards all entities and progression and places a fresh player in
// the centre of the screen.
func (w *World) Reset() {
	w.GameTime = 0
	w.NextID = 1
	w.Enemies = w.Enemies[:0]
	w.Bullets = w.Bullets[:0]
	w.Progress = component.NewGameProgress()
	w.Upgrades = component.NewWeaponUpgrades()
	w.GameOver = false
	w.Paused = false

	w.Player = &Entity{
		ID:   w.NewEntity(),
		Kind: KindPlayer,
		Body: component.Body{
			Position: vecmath.Vec2{X: w.Width / 2, Y: w.Height / 2},
			Speed:    config.PlayerSpeed,
			Shape:    component.ShapeCircle,
			Size:     config.PlayerRadius,
		},
		Health: component.NewHealth(config.PlayerMaxHealth),
		Player: &component.PlayerStateComponent{Facing: -math.Pi / 2},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy appends e to the enemy list and assigns it an ID.
func (w *World) AddEnemy(e *Entity) {
	e.ID = w.NewEntity()
	e.Kind = KindEnemy
	w.Enemies = append(w.Enemies, e)
}

// AddBullet appends e to the bullet list and assigns it an ID.
func (w *World) AddBullet(e *Entity) {
	e.ID = w.NewEntity()
	e.Kind = KindBullet
	w.Bullets = append(w.Bullets, e)
}

// Compact removes destroyed entities, keeping the relative order of the rest.
func (w *World) Compact() {
	w.Enemies = compact(w.Enemies)
	w.Bullets = compact(w.Bullets)
}

func compact(list []*Entity) []*Entity {
	n := 0
	for _, e := range list {
		if e.Destroyed {
			continue
		}
		list[n] = e
		n++
	}
	for i := n; i < len(list); i++ {
		list[i] = nil
	}
	return list[:n]
}

// Resize updates the playfield dimensions. Entities are not moved.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}
