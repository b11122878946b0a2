// internal/tty/frontend.go
package tty

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/pkg/vecmath"
)

// One terminal cell covers CellWidth x CellHeight world pixels.
const (
	CellWidth     = 10
	CellHeight    = 20
	FrameDuration = 16 * time.Millisecond
	hudRows       = 1
)

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleBullet = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Frontend runs a Game inside a terminal.
type Frontend struct {
	screen tcell.Screen
	game   *app.Game

	keys     *heldKeys
	mouse    input.Mouse
	autoFire bool

	lastFrame time.Time
}

func NewFrontend(screen tcell.Screen, game *app.Game) *Frontend {
	f := &Frontend{
		screen: screen,
		game:   game,
		keys:   newHeldKeys(keyHold),
	}
	f.resize()
	return f
}

// WorldSize converts a terminal size in cells to a playfield size in pixels.
func WorldSize(cols, rows int) (float64, float64) {
	rows -= hudRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

func toCell(p vecmath.Vec2) (int, int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y/CellHeight)) + hudRows
}

func fromCell(x, y int) vecmath.Vec2 {
	return vecmath.Vec2{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y-hudRows) + 0.5) * CellHeight,
	}
}

func (f *Frontend) resize() {
	f.game.Resize(WorldSize(f.screen.Size()))
}

// HandleEvent applies one terminal event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.mouse = input.Mouse{
			Position: fromCell(x, y),
			Pressed:  ev.Buttons()&tcell.Button1 != 0,
		}
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) handleKey(ev *tcell.EventKey, now time.Time) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if d, ok := directionOf(ev); ok {
		f.keys.Press(d, now)
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		f.autoFire = !f.autoFire
	case 'p', 'P':
		if !f.game.IsGameOver() {
			f.game.SetPaused(!f.game.IsPaused())
			f.keys.Clear()
		}
	case 'r', 'R':
		f.game.Reset()
		f.keys.Clear()
	}
	return false
}

// Input builds the tick input. With auto-fire on, the nearest enemy is the target.
func (f *Frontend) Input(now time.Time) input.State {
	mouse := f.mouse
	if f.autoFire {
		if target, ok := f.nearestEnemy(); ok {
			mouse = input.Mouse{Position: target, Pressed: true}
		}
	}
	return input.Merge(f.keys.Keys(now), input.Touch{}, mouse)
}

func (f *Frontend) nearestEnemy() (vecmath.Vec2, bool) {
	w := f.game.World
	from := w.Player.Center()
	best, found := 0.0, false
	var target vecmath.Vec2
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		c := e.Center()
		if d := vecmath.Distance(from, c); !found || d < best {
			best, target, found = d, c, true
		}
	}
	return target, found
}

// Step advances the game by one frame ending at now.
func (f *Frontend) Step(now time.Time) {
	dt := FrameDuration
	if !f.lastFrame.IsZero() {
		dt = now.Sub(f.lastFrame)
	}
	if limit := time.Duration(config.MaxDeltaTime * float64(time.Second)); dt > limit {
		dt = limit
	}
	f.lastFrame = now
	f.game.Tick(f.Input(now), dt)
}

// Run is the main loop: events come from a goroutine, frames from a ticker.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			f.Step(now)
			f.Draw()
		}
	}
}

// Draw renders the current snapshot.
func (f *Frontend) Draw() {
	snap := f.game.Snapshot()
	f.screen.Clear()

	for _, e := range snap.Enemies {
		f.drawEnemy(e)
	}
	for _, b := range snap.Bullets {
		x, y := toCell(b.Center)
		f.set(x, y, '•', styleBullet)
	}
	f.drawPlayer(snap.Player)
	f.drawHUD(snap)
	f.screen.Show()
}

func (f *Frontend) set(x, y int, r rune, style tcell.Style) {
	w, h := f.screen.Size()
	if x < 0 || y < hudRows || x >= w || y >= h {
		return
	}
	f.screen.SetContent(x, y, r, nil, style)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (f *Frontend) drawEnemy(e app.EntityView) {
	style := tcell.StyleDefault.Foreground(tcellColor(e.Color))
	x0, y0 := toCell(e.Position)
	x1, y1 := toCell(e.Position.Add(vecmath.Vec2{X: e.Size, Y: e.Size}))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.set(x, y, '█', style)
		}
	}
}

// Стрелки по восьми направлениям, начиная с «вправо», по часовой.
var facingRunes = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func facingRune(angle float64) rune {
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return facingRunes[sector]
}

func (f *Frontend) drawPlayer(p app.EntityView) {
	if p.Kind != entity.KindPlayer {
		return
	}
	x, y := toCell(p.Center)
	f.set(x, y, '@', stylePlayer)
	dir := vecmath.Vec2{X: math.Cos(p.Facing), Y: math.Sin(p.Facing)}
	ax, ay := toCell(p.Center.Add(dir.Scale(p.Radius)))
	if ax != x || ay != y {
		f.set(ax, ay, facingRune(p.Facing), stylePlayer)
	}
}

// HUDLine formats the status line shown on the top row.
func HUDLine(snap app.Snapshot, autoFire bool) string {
	line := fmt.Sprintf(" Score %d  Level %d (%d/%d)  HP %d/%d  Speed x%.1f  Guns %d",
		snap.Progress.Score, snap.Progress.Level,
		snap.Progress.CurrentLevelScore, snap.Progress.PointsNeeded,
		snap.Player.Health, snap.Player.MaxHealth,
		snap.Progress.GameSpeed, snap.Upgrades.BulletCount)
	if autoFire {
		line += "  [AUTO]"
	}
	switch {
	case snap.GameOver:
		line += "  GAME OVER - r restart, q quit"
	case snap.Paused:
		line += "  PAUSED - p resume"
	}
	return line
}

func (f *Frontend) drawHUD(snap app.Snapshot) {
	w, _ := f.screen.Size()
	style := styleHUD
	if snap.GameOver {
		style = styleAlert
	}
	line := []rune(HUDLine(snap, f.autoFire))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		f.screen.SetContent(x, 0, r, nil, style)
	}
}
