// internal/defs/types.go
package defs

// UpgradeField names a mutable field of the weapon upgrade state.
type UpgradeField string

const (
	UpgradeFireRate    UpgradeField = "FIRE_RATE"
	UpgradeBulletCount UpgradeField = "BULLET_COUNT"
	UpgradeBulletSpeed UpgradeField = "BULLET_SPEED"
	UpgradeBulletSize  UpgradeField = "BULLET_SIZE"
)
