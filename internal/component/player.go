// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока.
type PlayerStateComponent struct {
	Facing  float64 // угол взгляда в радианах, для отрисовки
	Moving  bool
	Weapon  Cooldown
	Contact Cooldown // общий кулдаун контактного урона
}
