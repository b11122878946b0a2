package app

import (
	"testing"
	"time"

	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/vecmath"
)

const frame = time.Second / 60

func newTestGame(seed int64) *Game {
	return NewGame(800, 600, utils.NewPRNGService(seed), event.NewDispatcher())
}

func TestTickSpawnsAndShoots(t *testing.T) {
	g := newTestGame(1)
	in := input.State{Shooting: true, Target: vecmath.Vec2{X: 400, Y: 0}}

	g.Tick(in, frame)
	if len(g.World.Bullets) != 1 {
		t.Fatalf("bullets after first tick = %d, want 1", len(g.World.Bullets))
	}

	for i := 0; i < 30; i++ {
		g.Tick(input.State{}, frame)
	}
	if len(g.World.Enemies) == 0 {
		t.Error("no enemies after 31 ticks")
	}
	if g.World.GameTime != 31*frame {
		t.Errorf("game time = %v", g.World.GameTime)
	}
}

func TestPausedAndGameOverFreezeSimulation(t *testing.T) {
	g := newTestGame(2)
	g.SetPaused(true)
	for i := 0; i < 100; i++ {
		g.Tick(input.State{Move: vecmath.Vec2{X: 1}}, frame)
	}
	if !g.IsPaused() || g.World.GameTime != 0 || len(g.World.Enemies) != 0 {
		t.Fatalf("paused game advanced: t=%v enemies=%d", g.World.GameTime, len(g.World.Enemies))
	}
	if g.World.Player.Body.Position.X != 400 {
		t.Error("player moved while paused")
	}

	g.SetPaused(false)
	g.World.GameOver = true
	g.Tick(input.State{}, frame)
	if g.World.GameTime != 0 {
		t.Error("game over did not stop the simulation")
	}
}

func TestResetLeavesGameOver(t *testing.T) {
	g := newTestGame(3)
	resets := 0
	g.EventDispatcher.Subscribe(event.GameReset, event.ListenerFunc(func(event.Event) { resets++ }))

	g.World.GameOver = true
	g.World.Progress.Score = 400
	g.Reset()

	if g.IsGameOver() || g.World.Progress.Score != 0 || resets != 1 {
		t.Errorf("over=%v score=%d resets=%d", g.IsGameOver(), g.World.Progress.Score, resets)
	}
}

func TestSurvivalRunIsDeterministic(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(99)
		for i := 0; i < 1200 && !g.IsGameOver(); i++ {
			in := input.State{
				Move:     vecmath.Vec2{X: float64(i/120%2*2 - 1)},
				Shooting: true,
				Target:   vecmath.Vec2{X: float64(i % 800), Y: float64(i * 7 % 600)},
			}
			g.Tick(in, frame)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Progress != b.Progress || a.Upgrades != b.Upgrades || a.GameOver != b.GameOver {
		t.Fatalf("runs diverged: %+v vs %+v", a.Progress, b.Progress)
	}
	if len(a.Enemies) != len(b.Enemies) || len(a.Bullets) != len(b.Bullets) {
		t.Fatalf("entity counts diverged")
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Fatalf("enemy %d diverged", i)
		}
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	g := newTestGame(4)
	g.ProgressionSystem.AddScore(520)
	g.Tick(input.State{Shooting: true, Target: vecmath.Vec2{X: 400, Y: 0}}, frame)

	snap := g.Snapshot()
	want := ProgressView{Score: 520, Level: 2, CurrentLevelScore: 20, PointsNeeded: 1000, LevelRatio: 0.02, GameSpeed: 1.1}
	if snap.Progress != want {
		t.Errorf("progress = %+v, want %+v", snap.Progress, want)
	}
	if snap.Upgrades.BulletCount != 2 || snap.Upgrades.FireRate != 1.5 || snap.Upgrades.BulletSpeed != 12 {
		t.Errorf("upgrades = %+v", snap.Upgrades)
	}
	if len(snap.Bullets) != 2 {
		t.Errorf("bullets = %d, want 2", len(snap.Bullets))
	}
	if snap.Player.HealthRatio() != 1 {
		t.Errorf("player health ratio = %v", snap.Player.HealthRatio())
	}

	g.World.Progress.Score = 0
	if snap.Progress.Score != 520 {
		t.Error("snapshot shares memory with the world")
	}
}

func TestResizeKeepsPlayerInside(t *testing.T) {
	g := newTestGame(5)
	g.World.Player.Body.Position = vecmath.Vec2{X: 780, Y: 580}
	g.Resize(400, 300)

	p := g.World.Player.Body.Position
	if p.X != 375 || p.Y != 275 {
		t.Errorf("player at %v after resize", p)
	}
}
