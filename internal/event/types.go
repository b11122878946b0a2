// internal/event/types.go
package event

import (
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/vecmath"
)

const (
	ScoreAdded     EventType = "ScoreAdded"     // Начислены очки
	LevelUp        EventType = "LevelUp"        // Новый уровень
	WeaponUpgraded EventType = "WeaponUpgraded" // Улучшение оружия
	ShotFired      EventType = "ShotFired"      // Выстрел
	EnemySpawned   EventType = "EnemySpawned"
	EnemyDamaged   EventType = "EnemyDamaged"   // Враг ранен, но жив
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен пулей
	EnemyDespawned EventType = "EnemyDespawned" // Враг ушёл за экран, без очков
	PlayerDamaged  EventType = "PlayerDamaged"
	GameOver       EventType = "GameOver"
	GameReset      EventType = "GameReset"
)

type ScoreAddedData struct {
	Points int
	Total  int
}

type LevelUpData struct {
	Level     int
	GameSpeed float64
}

type WeaponUpgradedData struct {
	Field defs.UpgradeField
	Value float64
}

type ShotFiredData struct {
	Origin  vecmath.Vec2
	Bullets int
}

type EnemyData struct {
	ID       types.EntityID
	Class    defs.EnemyClass
	Position vecmath.Vec2
	Points   int
}

type PlayerDamagedData struct {
	Damage  int
	Current int
	Max     int
}

type GameOverData struct {
	Score int
	Level int
}
