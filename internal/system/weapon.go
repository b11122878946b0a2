// internal/system/weapon.go
package system

import (
	"time"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/pkg/vecmath"
)

// SpreadDirections fans base out into the directions of one volley.
// Two bullets go to +15° and -15° with none along base; three or more
// collapse to a -18°/0°/+18° fan.
func SpreadDirections(base vecmath.Vec2, count int) []vecmath.Vec2 {
	switch {
	case count <= 1:
		return []vecmath.Vec2{base}
	case count == 2:
		return []vecmath.Vec2{
			vecmath.Rotate(base, config.TwoShotSpread),
			vecmath.Rotate(base, -config.TwoShotSpread),
		}
	default:
		return []vecmath.Vec2{
			vecmath.Rotate(base, -config.ThreeShotSpread),
			base,
			vecmath.Rotate(base, config.ThreeShotSpread),
		}
	}
}

// FireInterval returns the cooldown between shots for the given fire rate.
func FireInterval(fireRate float64) time.Duration {
	if fireRate <= 0 {
		fireRate = 1
	}
	return time.Duration(float64(config.BaseFireCooldown) / fireRate)
}

// WeaponSystem выпускает пули игрока с учётом кулдауна и улучшений.
type WeaponSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(world *entity.World, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{world: world, eventDispatcher: eventDispatcher}
}

// TryFire shoots a volley from the player toward target if the cooldown
// allows. It returns the number of bullets created.
func (s *WeaponSystem) TryFire(target vecmath.Vec2) int {
	player := s.world.Player
	if !player.Alive() {
		return 0
	}
	now := s.world.GameTime
	upgrades := s.world.Upgrades
	state := player.Player

	if !state.Weapon.Ready(now, FireInterval(upgrades.FireRate)) {
		return 0
	}
	state.Weapon.Trigger(now)

	origin := player.Body.Position
	base := vecmath.DirectionTo(origin, target)
	dirs := SpreadDirections(base, upgrades.BulletCount)
	for _, dir := range dirs {
		s.world.AddBullet(&entity.Entity{
			Body: component.Body{
				Position:  origin,
				Direction: dir,
				Speed:     upgrades.BulletSpeed,
				Shape:     component.ShapeCircle,
				Size:      upgrades.BulletSize,
			},
			Projectile: &component.Projectile{
				Damage: config.BulletDamage,
				Color:  config.BulletColor,
			},
		})
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotFiredData{
		Origin:  origin,
		Bullets: len(dirs),
	}})
	return len(dirs)
}
