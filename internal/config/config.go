// internal/config/config.go
package config

import (
	"image/color"
	"math"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // секунды, ограничение шага кадра
	TickRate     = 60
)

// Игрок
const (
	PlayerRadius        = 25.0
	PlayerSpeed         = 5.0 // пикселей за тик
	PlayerMaxHealth     = 100
	PlayerContactDamage = 10
	DamageCooldown      = 500 * time.Millisecond
)

// Оружие
const (
	BaseFireCooldown = 300 * time.Millisecond
	TwoShotSpread    = math.Pi / 12 // 15°
	ThreeShotSpread  = math.Pi / 10 // 18°
	BulletDamage     = 1
)

// Спавн и прогрессия
const (
	BaseSpawnInterval    = 30 // тиков
	MinSpawnInterval     = 20 // тиков
	LevelScoreMultiplier = 500
	GameSpeedStep        = 0.1
	MaxGameSpeed         = 3.0

	EnemyMinSpeed = 2.0
	EnemyMaxSpeed = 4.0
)

// Ввод
const (
	TouchDeadzone = 0.1
)

// Отображение
const (
	HealthBarWidth      = 60.0
	HealthBarHeight     = 6.0
	HealthBarOffsetY    = -40.0
	HealthBarHighRatio  = 0.6
	HealthBarLowRatio   = 0.3
	DamageFlashDuration = 100 * time.Millisecond
	IndicatorRadius     = 10.0
	StrokeWidth         = 2.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{70, 130, 230, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}

	HealthBarBackground = color.RGBA{40, 40, 40, 220}
	HealthHighColor     = color.RGBA{0, 200, 0, 255}
	HealthMidColor      = color.RGBA{230, 200, 0, 255}
	HealthLowColor      = color.RGBA{220, 30, 30, 255}

	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 230}
)
