// internal/system/progression.go
package system

import (
	"log"
	"math"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
)

// ProgressionSystem отвечает за счёт, уровни и улучшения оружия.
// Это единственный путь изменения WeaponUpgrades во время игры.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{world: world, eventDispatcher: eventDispatcher}
}

// AddScore awards points, levels up at most once, and applies every weapon
// unlock whose gate is met. Gates compare against the upgrade values as
// they were before this call.
func (s *ProgressionSystem) AddScore(points int) {
	progress := s.world.Progress
	upgrades := s.world.Upgrades
	before := *upgrades

	progress.Score += points
	progress.CurrentLevelScore += points

	needed := progress.PointsNeeded()
	if progress.CurrentLevelScore >= needed {
		progress.Level++
		progress.CurrentLevelScore -= needed
		progress.GameSpeed = nextGameSpeed(progress.GameSpeed)
		log.Printf("Level up: %d (speed x%.1f)", progress.Level, progress.GameSpeed)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{
			Level:     progress.Level,
			GameSpeed: progress.GameSpeed,
		}})
	}

	for _, unlock := range defs.WeaponUnlocks {
		if progress.Score < unlock.Score || before.Get(unlock.Field) != unlock.From {
			continue
		}
		upgrades.Set(unlock.Field, unlock.To)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponUpgraded, Data: event.WeaponUpgradedData{
			Field: unlock.Field,
			Value: unlock.To,
		}})
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreAdded, Data: event.ScoreAddedData{
		Points: points,
		Total:  progress.Score,
	}})
}

// nextGameSpeed adds one step, rounded to tenths so repeated steps land
// exactly on the cap.
func nextGameSpeed(speed float64) float64 {
	next := math.Round((speed+config.GameSpeedStep)*10) / 10
	return math.Min(next, config.MaxGameSpeed)
}
