package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enemies.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func restoreEnemyDefs(t *testing.T) {
	saved := EnemyDefs
	t.Cleanup(func() { EnemyDefs = saved })
}

func TestParseEnemyClass(t *testing.T) {
	for _, name := range []string{"LIGHT", "medium", "Heavy"} {
		if _, err := ParseEnemyClass(name); err != nil {
			t.Errorf("ParseEnemyClass(%q): %v", name, err)
		}
	}
	if _, err := ParseEnemyClass("boss"); err == nil {
		t.Error("unknown class accepted")
	}
}

func TestLoadEnemyDefinitionsMerges(t *testing.T) {
	restoreEnemyDefs(t)
	path := writeTuning(t, `
enemies:
  - class: heavy
    health: 5
    color: "#102030"
  - class: LIGHT
    points: 40
`)
	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("LoadEnemyDefinitions: %v", err)
	}

	heavy := EnemyDefs[EnemyHeavy]
	if heavy.Health != 5 || heavy.Color != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("heavy = %+v", heavy)
	}
	if heavy.MinSize != 50 || heavy.MaxSize != 70 || heavy.Points != 100 {
		t.Errorf("unlisted heavy fields changed: %+v", heavy)
	}
	if EnemyDefs[EnemyLight].Points != 40 {
		t.Errorf("light points = %d, want 40", EnemyDefs[EnemyLight].Points)
	}
	if EnemyDefs[EnemyMedium].Health != 2 {
		t.Error("medium should be untouched")
	}
}

func TestLoadEnemyDefinitionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown class", "enemies:\n  - class: boss\n    health: 3\n"},
		{"inverted sizes", "enemies:\n  - class: light\n    min_size: 50\n    max_size: 40\n"},
		{"negative health", "enemies:\n  - class: medium\n    health: -1\n"},
		{"bad color", "enemies:\n  - class: medium\n    color: \"#zz\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreEnemyDefs(t)
			before := EnemyDefs
			if err := LoadEnemyDefinitions(writeTuning(t, tt.body)); err == nil {
				t.Fatal("expected an error")
			}
			if EnemyDefs[EnemyLight] != before[EnemyLight] || EnemyDefs[EnemyMedium] != before[EnemyMedium] {
				t.Error("failed load modified EnemyDefs")
			}
		})
	}
}

func TestLoadEnemyDefinitionsMissingFile(t *testing.T) {
	restoreEnemyDefs(t)
	if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}
