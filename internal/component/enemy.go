package component

import (
	"go-swarm-shooter/internal/defs"
	"image/color"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Class  defs.EnemyClass
	Points int // начисляется только при убийстве
	Color  color.RGBA
}
