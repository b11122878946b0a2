// internal/component/projectile.go
package component

import "image/color"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Damage int
	Color  color.RGBA
}
