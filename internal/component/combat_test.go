package component

import (
	"testing"
	"time"
)

func TestHealthTakeDamage(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		hits        []int
		wantCurrent int
		wantDeaths  int
	}{
		{"SingleLethal", 1, []int{1}, 0, 1},
		{"Overkill", 3, []int{10}, 0, 1},
		{"NonLethal", 3, []int{1, 1}, 1, 0},
		{"ExactlyOnce", 2, []int{1, 1, 1, 1}, 0, 1},
		{"NegativeIgnored", 5, []int{-3}, 5, 0},
		{"ZeroDamage", 5, []int{0}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.start)
			deaths := 0
			for _, dmg := range tt.hits {
				if h.TakeDamage(dmg) {
					deaths++
				}
				if h.Current < 0 || h.Current > h.Max {
					t.Fatalf("current %d outside [0,%d]", h.Current, h.Max)
				}
			}
			if h.Current != tt.wantCurrent {
				t.Errorf("current = %d, want %d", h.Current, tt.wantCurrent)
			}
			if deaths != tt.wantDeaths {
				t.Errorf("death reported %d times, want %d", deaths, tt.wantDeaths)
			}
		})
	}
}

func TestHealthHealAndPercent(t *testing.T) {
	h := NewHealth(100)
	h.TakeDamage(30)
	if p := h.Percent(); p != 0.7 {
		t.Errorf("Percent = %v, want 0.7", p)
	}

	h.Heal(50)
	if h.Current != 100 {
		t.Errorf("Heal overshot: %d", h.Current)
	}

	h.TakeDamage(100)
	h.Heal(10)
	if !h.IsDead() {
		t.Error("heal revived a depleted pool")
	}

	h.Reset()
	if h.Current != h.Max || h.IsDead() {
		t.Errorf("Reset: current = %d", h.Current)
	}
}

func TestCooldown(t *testing.T) {
	var c Cooldown
	interval := 500 * time.Millisecond

	if !c.Ready(0, interval) {
		t.Fatal("fresh cooldown should be ready at t=0")
	}
	c.Trigger(0)

	tests := []struct {
		now  time.Duration
		want bool
	}{
		{0, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{2 * time.Second, true},
	}
	for _, tt := range tests {
		if got := c.Ready(tt.now, interval); got != tt.want {
			t.Errorf("Ready(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}

	c.Reset()
	if _, armed := c.Last(); armed {
		t.Error("Reset left the cooldown armed")
	}
}

func TestWeaponUpgradesGetSet(t *testing.T) {
	w := NewWeaponUpgrades()
	if w.FireRate != 1 || w.BulletCount != 1 || w.BulletSpeed != 8 || w.BulletSize != 5 {
		t.Fatalf("unexpected defaults: %+v", *w)
	}

	w.Set("BULLET_COUNT", 3)
	if w.BulletCount != 3 || w.Get("BULLET_COUNT") != 3 {
		t.Errorf("BulletCount = %d", w.BulletCount)
	}
	w.Set("NOPE", 42)
	if w.Get("NOPE") != 0 {
		t.Error("unknown field should read as zero")
	}
}

func TestGameProgressLevelRatio(t *testing.T) {
	p := NewGameProgress()
	if p.PointsNeeded() != 500 {
		t.Fatalf("PointsNeeded = %d", p.PointsNeeded())
	}
	p.CurrentLevelScore = 250
	if r := p.LevelRatio(); r != 0.5 {
		t.Errorf("LevelRatio = %v, want 0.5", r)
	}
}
