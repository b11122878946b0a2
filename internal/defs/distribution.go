// internal/defs/distribution.go
package defs

// ClassWeight is one entry of a level distribution. Weights of a level sum to 1.
type ClassWeight struct {
	Class  EnemyClass
	Weight float64
}

// LevelDistributions определяет вероятности классов врагов по уровням.
// Порядок важен: выбор идёт по накопленным порогам, LIGHT первым.
var LevelDistributions = map[int][]ClassWeight{
	1: {{EnemyLight, 0.70}, {EnemyMedium, 0.25}, {EnemyHeavy, 0.05}},
	2: {{EnemyLight, 0.60}, {EnemyMedium, 0.30}, {EnemyHeavy, 0.10}},
	3: {{EnemyLight, 0.50}, {EnemyMedium, 0.30}, {EnemyHeavy, 0.20}},
}

// MaxDistributionLevel is the highest level with its own row in LevelDistributions.
const MaxDistributionLevel = 3

// DistributionForLevel returns the row for level, or the highest defined
// tier when the level has no row of its own.
func DistributionForLevel(level int) []ClassWeight {
	if row, ok := LevelDistributions[level]; ok {
		return row
	}
	return LevelDistributions[MaxDistributionLevel]
}
