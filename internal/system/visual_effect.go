// internal/system/visual_effect.go
package system

import (
	"time"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/vecmath"
)

const (
	burstDuration  = 250 * time.Millisecond
	burstMaxRadius = 40.0
)

// Burst is a ring that expands where an enemy was killed.
type Burst struct {
	Position  vecmath.Vec2
	Timer     time.Duration
	Duration  time.Duration
	MaxRadius float64
}

// Progress returns how far the burst animation is, in [0, 1].
func (b *Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	p := float64(b.Timer) / float64(b.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Radius is the current ring radius.
func (b *Burst) Radius() float64 {
	return b.Progress() * b.MaxRadius
}

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и
// кольцами взрывов. Симуляцию не трогает, только слушает события.
type VisualEffectSystem struct {
	world   *entity.World
	flashes map[types.EntityID]*component.DamageFlash
	bursts  []*Burst
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{
		world:   world,
		flashes: make(map[types.EntityID]*component.DamageFlash),
	}
	if eventDispatcher != nil {
		eventDispatcher.SubscribeAll(s, event.EnemyDamaged, event.EnemyKilled, event.PlayerDamaged, event.GameReset)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDamaged:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.flash(data.ID)
		}
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			delete(s.flashes, data.ID)
			s.bursts = append(s.bursts, &Burst{
				Position:  data.Position,
				Duration:  burstDuration,
				MaxRadius: burstMaxRadius,
			})
		}
	case event.PlayerDamaged:
		if s.world.Player != nil {
			s.flash(s.world.Player.ID)
		}
	case event.GameReset:
		s.Clear()
	}
}

func (s *VisualEffectSystem) flash(id types.EntityID) {
	s.flashes[id] = &component.DamageFlash{Duration: config.DamageFlashDuration}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for id, flash := range s.flashes {
		if !flash.Advance(dt) {
			delete(s.flashes, id)
		}
	}

	alive := s.bursts[:0]
	for _, b := range s.bursts {
		b.Timer += dt
		if b.Timer < b.Duration {
			alive = append(alive, b)
		}
	}
	for i := len(alive); i < len(s.bursts); i++ {
		s.bursts[i] = nil
	}
	s.bursts = alive
}

// IsFlashing сообщает, нужно ли рисовать сущность цветом урона.
func (s *VisualEffectSystem) IsFlashing(id types.EntityID) bool {
	_, ok := s.flashes[id]
	return ok
}

// Bursts returns the active bursts. The slice is owned by the system.
func (s *VisualEffectSystem) Bursts() []*Burst {
	return s.bursts
}

func (s *VisualEffectSystem) Clear() {
	clear(s.flashes)
	s.bursts = s.bursts[:0]
}
