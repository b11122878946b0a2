// internal/defs/weapons.go
package defs

// Начальные значения улучшений оружия.
const (
	DefaultFireRate    = 1.0
	DefaultBulletCount = 1
	DefaultBulletSpeed = 8.0
	DefaultBulletSize  = 5.0
)

// WeaponUnlock is a one-shot upgrade: once the score reaches Score and the
// field still holds From, the field becomes To.
type WeaponUnlock struct {
	Score int
	Field UpgradeField
	From  float64
	To    float64
}

// WeaponUnlocks is checked in order after every score change.
var WeaponUnlocks = []WeaponUnlock{
	{Score: 100, Field: UpgradeFireRate, From: 1, To: 1.5},
	{Score: 250, Field: UpgradeBulletCount, From: 1, To: 2},
	{Score: 500, Field: UpgradeBulletSpeed, From: 8, To: 12},
	{Score: 750, Field: UpgradeBulletCount, From: 2, To: 3},
	{Score: 1000, Field: UpgradeFireRate, From: 1.5, To: 2},
}
