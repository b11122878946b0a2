// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator отображает уровень, счёт и прогресс до следующего уровня.
type PlayerLevelIndicator struct {
	X, Y float32
	Face font.Face
}

const (
	xpBarWidth  = 180
	xpBarHeight = 12
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Face: face}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, score, level, levelScore, needed int, gameSpeed float64) {
	label := fmt.Sprintf("Score %d   Level %d   x%.1f", score, level, gameSpeed)
	DrawLeft(screen, label, i.Face, int(i.X), int(i.Y), borderColor)

	barY := i.Y + 24
	vector.StrokeRect(screen, i.X, barY, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if needed > 0 {
		fillRatio = float64(levelScore) / float64(needed)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, barY+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}
}
