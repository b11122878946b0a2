// internal/system/movement.go
package system

import (
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/internal/physics"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/vecmath"
)

// доля поворота за тик при сглаживании взгляда игрока
const facingBlend = 0.35

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// UpdatePlayer moves the player by one tick of input and keeps the avatar
// fully on screen.
func (s *MovementSystem) UpdatePlayer(in input.State) {
	p := s.world.Player
	if !p.Alive() {
		return
	}

	p.Body.Direction = in.Move
	p.Body.Step(1)
	p.Body.Position = physics.Contain(p.Body.Position, p.Body.Size, s.world.Width, s.world.Height)

	state := p.Player
	state.Moving = !in.Move.IsZero()

	// Взгляд: на цель при стрельбе, иначе по направлению движения
	var look vecmath.Vec2
	switch {
	case in.Shooting:
		look = in.Target.Sub(p.Body.Position)
	case state.Moving:
		look = in.Move
	}
	if !look.IsZero() {
		state.Facing = utils.LerpAngle(state.Facing, vecmath.Angle(look), facingBlend)
	}
}

// StepEnemy moves an enemy, scaled by the current game speed.
func (s *MovementSystem) StepEnemy(e *entity.Entity) {
	e.Body.Step(s.world.Progress.GameSpeed)
}

// StepBullet moves a bullet. Bullets ignore game speed.
func (s *MovementSystem) StepBullet(b *entity.Entity) {
	b.Body.Step(1)
}
