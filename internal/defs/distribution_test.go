package defs

import (
	"math"
	"testing"
)

func TestLevelDistributionsSumToOne(t *testing.T) {
	for level, row := range LevelDistributions {
		sum := 0.0
		for _, cw := range row {
			sum += cw.Weight
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("level %d weights sum to %v", level, sum)
		}
		if row[0].Class != EnemyLight {
			t.Errorf("level %d: first class = %v, want LIGHT", level, row[0].Class)
		}
	}
}

func TestDistributionForLevelFallsBackToHighestTier(t *testing.T) {
	top := LevelDistributions[MaxDistributionLevel]
	for _, level := range []int{3, 4, 17, 1000, 0} {
		got := DistributionForLevel(level)
		if &got[0] != &top[0] {
			t.Errorf("level %d did not resolve to the highest tier", level)
		}
	}

	if got := DistributionForLevel(2); got[0].Weight != 0.60 {
		t.Errorf("level 2 light weight = %v, want 0.60", got[0].Weight)
	}
}

func TestEnemyDefsCoverAllClasses(t *testing.T) {
	tests := []struct {
		class  EnemyClass
		health int
		points int
	}{
		{EnemyLight, 1, 30},
		{EnemyMedium, 2, 60},
		{EnemyHeavy, 3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			def, ok := EnemyDefs[tt.class]
			if !ok {
				t.Fatalf("no definition for %v", tt.class)
			}
			if def.Health != tt.health || def.Points != tt.points {
				t.Errorf("got health=%d points=%d, want %d/%d", def.Health, def.Points, tt.health, tt.points)
			}
			if def.MinSize >= def.MaxSize {
				t.Errorf("empty size range [%v,%v)", def.MinSize, def.MaxSize)
			}
		})
	}
}
