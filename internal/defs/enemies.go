// internal/defs/enemies.go
package defs

import "image/color"

// EnemyClass is the tier an enemy is spawned with. It never changes afterwards.
type EnemyClass int

const (
	EnemyLight EnemyClass = iota
	EnemyMedium
	EnemyHeavy
)

func (c EnemyClass) String() string {
	switch c {
	case EnemyLight:
		return "LIGHT"
	case EnemyMedium:
		return "MEDIUM"
	case EnemyHeavy:
		return "HEAVY"
	default:
		return "UNKNOWN"
	}
}

// EnemyDefinition holds all the static data for one enemy class.
type EnemyDefinition struct {
	Class   EnemyClass
	Health  int
	MinSize float64 // inclusive
	MaxSize float64 // exclusive
	Color   color.RGBA
	Points  int
}

// EnemyDefs is the library of enemy definitions, mapped by class.
var EnemyDefs = map[EnemyClass]EnemyDefinition{
	EnemyLight: {
		Class:   EnemyLight,
		Health:  1,
		MinSize: 30,
		MaxSize: 40,
		Color:   color.RGBA{0xff, 0x00, 0x00, 0xff},
		Points:  30,
	},
	EnemyMedium: {
		Class:   EnemyMedium,
		Health:  2,
		MinSize: 40,
		MaxSize: 55,
		Color:   color.RGBA{0xff, 0x88, 0x00, 0xff},
		Points:  60,
	},
	EnemyHeavy: {
		Class:   EnemyHeavy,
		Health:  3,
		MinSize: 50,
		MaxSize: 70,
		Color:   color.RGBA{0x8b, 0x00, 0x00, 0xff},
		Points:  100,
	},
}
