// internal/app/snapshot.go
package app

import (
	"image/color"
	"log"
	"time"

	"github.com/jinzhu/copier"

	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/vecmath"
)

// ProgressView is a read-only copy of the run's progression.
type ProgressView struct {
	Score             int
	Level             int
	CurrentLevelScore int
	PointsNeeded      int
	LevelRatio        float64
	GameSpeed         float64
}

// UpgradesView is a read-only copy of the weapon upgrades.
type UpgradesView struct {
	FireRate    float64
	BulletCount int
	BulletSpeed float64
	BulletSize  float64
}

// EntityView holds what the presentation needs to draw one entity.
type EntityView struct {
	ID        types.EntityID
	Kind      entity.Kind
	Position  vecmath.Vec2 // левый верхний угол для врагов, центр для остальных
	Center    vecmath.Vec2
	Size      float64
	Radius    float64
	Class     defs.EnemyClass
	Color     color.RGBA
	Health    int
	MaxHealth int
	Facing    float64
	Moving    bool
	Destroyed bool
}

// HealthRatio returns Health/MaxHealth, or 0 for entities without health.
func (v EntityView) HealthRatio() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}

// Snapshot is a self-contained copy of everything the presentation draws.
// It shares no memory with the simulation.
type Snapshot struct {
	Width    float64
	Height   float64
	GameTime time.Duration
	Player   EntityView
	Enemies  []EntityView
	Bullets  []EntityView
	Progress ProgressView
	Upgrades UpgradesView
	GameOver bool
	Paused   bool
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	snap := Snapshot{
		Width:    w.Width,
		Height:   w.Height,
		GameTime: w.GameTime,
		Player:   viewOf(w.Player),
		Enemies:  make([]EntityView, 0, len(w.Enemies)),
		Bullets:  make([]EntityView, 0, len(w.Bullets)),
		GameOver: w.GameOver,
		Paused:   w.Paused,
	}
	if err := copier.Copy(&snap.Progress, w.Progress); err != nil {
		log.Printf("snapshot: copy progress: %v", err)
	}
	if err := copier.Copy(&snap.Upgrades, w.Upgrades); err != nil {
		log.Printf("snapshot: copy upgrades: %v", err)
	}

	for _, e := range w.Enemies {
		if e.Alive() {
			snap.Enemies = append(snap.Enemies, viewOf(e))
		}
	}
	for _, b := range w.Bullets {
		if b.Alive() {
			snap.Bullets = append(snap.Bullets, viewOf(b))
		}
	}
	return snap
}

func viewOf(e *entity.Entity) EntityView {
	v := EntityView{
		ID:        e.ID,
		Kind:      e.Kind,
		Position:  e.Body.Position,
		Center:    e.Body.Center(),
		Size:      e.Body.Size,
		Radius:    e.Body.Radius(),
		Destroyed: e.Destroyed,
	}
	if e.Health != nil {
		v.Health = e.Health.Current
		v.MaxHealth = e.Health.Max
	}
	switch {
	case e.Enemy != nil:
		v.Class = e.Enemy.Class
		v.Color = e.Enemy.Color
	case e.Projectile != nil:
		v.Color = e.Projectile.Color
	case e.Player != nil:
		v.Facing = e.Player.Facing
		v.Moving = e.Player.Moving
	}
	return v
}
