package component

import (
	"go-swarm-shooter/internal/defs"
)

// WeaponUpgrades is the mutable weapon state read on every shot.
type WeaponUpgrades struct {
	FireRate    float64
	BulletCount int
	BulletSpeed float64
	BulletSize  float64
}

func NewWeaponUpgrades() *WeaponUpgrades {
	return &WeaponUpgrades{
		FireRate:    defs.DefaultFireRate,
		BulletCount: defs.DefaultBulletCount,
		BulletSpeed: defs.DefaultBulletSpeed,
		BulletSize:  defs.DefaultBulletSize,
	}
}

// Get returns the current value of field.
func (w *WeaponUpgrades) Get(field defs.UpgradeField) float64 {
	switch field {
	case defs.UpgradeFireRate:
		return w.FireRate
	case defs.UpgradeBulletCount:
		return float64(w.BulletCount)
	case defs.UpgradeBulletSpeed:
		return w.BulletSpeed
	case defs.UpgradeBulletSize:
		return w.BulletSize
	}
	return 0
}

// Set assigns value to field. Unknown fields are ignored.
func (w *WeaponUpgrades) Set(field defs.UpgradeField, value float64) {
	switch field {
	case defs.UpgradeFireRate:
		w.FireRate = value
	case defs.UpgradeBulletCount:
		w.BulletCount = int(value)
	case defs.UpgradeBulletSpeed:
		w.BulletSpeed = value
	case defs.UpgradeBulletSize:
		w.BulletSize = value
	}
}
