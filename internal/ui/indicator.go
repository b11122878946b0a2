// internal/ui/indicator.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-swarm-shooter/internal/config"
)

// WeaponIndicator показывает число стволов и скорострельность.
// При улучшении оружия индикатор коротко «пульсирует».
type WeaponIndicator struct {
	X, Y      float32
	Radius    float32
	Face      font.Face
	LastPulse time.Time
}

func NewWeaponIndicator(x, y, radius float32, face font.Face) *WeaponIndicator {
	return &WeaponIndicator{X: x, Y: y, Radius: radius, Face: face}
}

// Pulse запускает анимацию улучшения.
func (i *WeaponIndicator) Pulse() {
	i.LastPulse = time.Now()
}

// Draw отрисовывает индикатор
func (i *WeaponIndicator) Draw(screen *ebiten.Image, bulletCount int, fireRate float64) {
	elapsed := time.Since(i.LastPulse).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	shown := bulletCount
	if shown > 3 {
		shown = 3
	}
	gap := r*2 + 6
	for j := 0; j < 3; j++ {
		cx := i.X + float32(j)*gap
		if j < shown {
			vector.DrawFilledCircle(screen, cx, i.Y, r, config.BulletColor, true)
		}
		vector.StrokeCircle(screen, cx, i.Y, r, 1, config.IndicatorStroke, true)
	}

	label := fmt.Sprintf("x%.1f", fireRate)
	DrawLeft(screen, label, i.Face, int(i.X+3*gap), int(i.Y-i.Radius), config.TextLightColor)
}
