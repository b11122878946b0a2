// pkg/render/renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/system"
	"go-swarm-shooter/internal/ui"
)

const gridStep = 50

// Renderer рисует снимок симуляции. Сам мир он не читает.
type Renderer struct {
	effects *system.VisualEffectSystem
	colors  *Palette

	background *ebiten.Image
	bgW, bgH   int
}

func NewRenderer(effects *system.VisualEffectSystem, colors *Palette) *Renderer {
	return &Renderer{effects: effects, colors: colors}
}

// DefaultPalette builds the palette from config colors.
func DefaultPalette() *Palette {
	return &Palette{
		Background: config.BackgroundColor,
		Grid:       DarkenColor(config.ButtonColor),
		Player:     config.PlayerColor,
		Flash:      config.FlashColor,
		Stroke:     config.IndicatorStroke,
		Text:       config.TextLightColor,
		Overlay:    config.OverlayColor,
	}
}

// renderBackground заранее рисует фон с сеткой, перерисовывается только при смене размера.
func (r *Renderer) renderBackground(w, h int) {
	if r.background != nil && r.bgW == w && r.bgH == h {
		return
	}
	if r.background != nil {
		r.background.Deallocate()
	}
	img := ebiten.NewImage(w, h)
	img.Fill(r.colors.Background)
	for x := 0; x < w; x += gridStep {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(h), 1, r.colors.Grid, false)
	}
	for y := 0; y < h; y += gridStep {
		vector.StrokeLine(img, 0, float32(y), float32(w), float32(y), 1, r.colors.Grid, false)
	}
	r.background, r.bgW, r.bgH = img, w, h
}

// Draw рисует фон, врагов, пули, игрока и эффекты.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if w, h := int(snap.Width), int(snap.Height); w > 0 && h > 0 {
		r.renderBackground(w, h)
		screen.DrawImage(r.background, nil)
	} else {
		screen.Fill(r.colors.Background)
	}

	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.Center.X), float32(b.Center.Y), float32(b.Radius), b.Color, true)
	}
	r.drawPlayer(screen, snap.Player)
	r.drawBursts(screen)
}

func (r *Renderer) flashing(v app.EntityView) bool {
	return r.effects != nil && r.effects.IsFlashing(v.ID)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EntityView) {
	fill := e.Color
	if r.flashing(e) {
		fill = r.colors.Flash
	}
	x, y, s := float32(e.Position.X), float32(e.Position.Y), float32(e.Size)
	vector.DrawFilledRect(screen, x, y, s, s, fill, false)
	vector.StrokeRect(screen, x, y, s, s, 1, DarkenColor(e.Color), false)

	// Полоску показываем только тем, кого нельзя убить одним попаданием
	if e.MaxHealth > 1 {
		ui.DrawHealthBar(screen, float32(e.Center.X), float32(e.Center.Y), e.HealthRatio())
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p app.EntityView) {
	if p.Destroyed {
		return
	}
	cx, cy, rad := float32(p.Center.X), float32(p.Center.Y), float32(p.Radius)
	fill := r.colors.Player
	if r.flashing(p) {
		fill = r.colors.Flash
	}
	vector.DrawFilledCircle(screen, cx, cy, rad, fill, true)
	vector.StrokeCircle(screen, cx, cy, rad, config.StrokeWidth, r.colors.Stroke, true)

	// Ствол по направлению взгляда
	barrel := float64(rad) * 1.4
	ex := cx + float32(math.Cos(p.Facing)*barrel)
	ey := cy + float32(math.Sin(p.Facing)*barrel)
	vector.StrokeLine(screen, cx, cy, ex, ey, 4, r.colors.Stroke, true)

	ui.DrawHealthBar(screen, cx, cy, p.HealthRatio())
}

func (r *Renderer) drawBursts(screen *ebiten.Image) {
	if r.effects == nil {
		return
	}
	for _, b := range r.effects.Bursts() {
		alpha := uint8(255 * (1 - b.Progress()))
		vector.StrokeCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Radius()), 2, WithAlpha(r.colors.Flash, alpha), true)
	}
}

// DrawOverlay затемняет экран под модальными состояниями.
func (r *Renderer) DrawOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), r.colors.Overlay, false)
}
