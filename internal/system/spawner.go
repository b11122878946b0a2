// internal/system/spawner.go
package system

import (
	"math"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/vecmath"
)

// Side — край экрана, с которого появляются враги
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// EnemyTypeForLevel draws an enemy class from the level's distribution.
func EnemyTypeForLevel(level int, rng *utils.PRNGService) defs.EnemyClass {
	return rng.ChooseCumulative(defs.DistributionForLevel(level))
}

// SpawnSystem периодически создаёт врагов у краёв экрана.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	timer           int // тиков с последнего спавна
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Interval returns the current spawn threshold in ticks.
func (s *SpawnSystem) Interval() float64 {
	speed := s.world.Progress.GameSpeed
	if speed <= 0 {
		speed = 1
	}
	return math.Max(config.BaseSpawnInterval/speed, config.MinSpawnInterval)
}

// Update advances the timer by one tick and spawns a batch once it exceeds
// the interval. It returns the number of enemies created.
func (s *SpawnSystem) Update() int {
	s.timer++
	if float64(s.timer) <= s.Interval() {
		return 0
	}
	s.timer = 0

	// Вся пачка целится в одну и ту же позицию игрока
	target := s.world.Player.Center()
	side := Side(s.rng.Intn(4))
	count := 2
	if s.rng.Float64() > 0.5 {
		count = 1
	}

	for i := 0; i < count; i++ {
		s.spawnEnemy(side, target)
	}
	return count
}

func (s *SpawnSystem) Reset() {
	s.timer = 0
}

func (s *SpawnSystem) spawnEnemy(side Side, target vecmath.Vec2) {
	class := EnemyTypeForLevel(s.world.Progress.Level, s.rng)
	def := defs.EnemyDefs[class]
	size := s.rng.Range(def.MinSize, def.MaxSize)
	pos := s.edgePosition(side, size)

	e := &entity.Entity{
		Body: component.Body{
			Position:  pos,
			Direction: vecmath.DirectionTo(pos, target),
			Speed:     s.rng.Range(config.EnemyMinSpeed, config.EnemyMaxSpeed),
			Shape:     component.ShapeBox,
			Size:      size,
		},
		Health: component.NewHealth(def.Health),
		Enemy: &component.Enemy{
			Class:  class,
			Points: def.Points,
			Color:  def.Color,
		},
	}
	s.world.AddEnemy(e)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID:       e.ID,
		Class:    class,
		Position: pos,
		Points:   def.Points,
	}})
}

// edgePosition places a box of the given size just outside the chosen edge.
func (s *SpawnSystem) edgePosition(side Side, size float64) vecmath.Vec2 {
	w, h := s.world.Width, s.world.Height
	switch side {
	case SideTop:
		return vecmath.Vec2{X: s.rng.Float64() * (w - size), Y: -size}
	case SideBottom:
		return vecmath.Vec2{X: s.rng.Float64() * (w - size), Y: h + size}
	case SideLeft:
		return vecmath.Vec2{X: -size, Y: s.rng.Float64() * (h - size)}
	default:
		return vecmath.Vec2{X: w + size, Y: s.rng.Float64() * (h - size)}
	}
}
