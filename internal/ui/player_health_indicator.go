// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-swarm-shooter/internal/config"
)

const (
	HealthCols          = 5
	HealthPerPip        = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков,
// по одному на каждые HealthPerPip единиц.
type PlayerHealthIndicator struct {
	X, Y float32
	Face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Face: face}
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	pips := (maxHealth + HealthPerPip - 1) / HealthPerPip
	filled := (health + HealthPerPip - 1) / HealthPerPip
	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	fill := HealthColor(ratio)

	textH := float32(22)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < pips; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + textH + float32(j/HealthCols)*step + HealthCircleRadius
		if j < filled {
			vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		}
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.IndicatorStroke, true)
	}

	DrawLeft(screen, fmt.Sprintf("HP %d/%d", health, maxHealth), i.Face, int(i.X), int(i.Y), config.TextLightColor)
}
