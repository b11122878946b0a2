// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-swarm-shooter/internal/config"
)

// HealthColor выбирает цвет полосы здоровья по доле оставшегося HP.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio >= config.HealthBarHighRatio:
		return config.HealthHighColor
	case ratio >= config.HealthBarLowRatio:
		return config.HealthMidColor
	default:
		return config.HealthLowColor
	}
}

// DrawHealthBar рисует полосу здоровья над сущностью с центром в (cx, cy).
func DrawHealthBar(screen *ebiten.Image, cx, cy float32, ratio float64) {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	x := cx - config.HealthBarWidth/2
	y := cy + config.HealthBarOffsetY

	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBackground, false)
	if w := float32(config.HealthBarWidth * ratio); w > 0 {
		vector.DrawFilledRect(screen, x, y, w, config.HealthBarHeight, HealthColor(ratio), false)
	}
}
