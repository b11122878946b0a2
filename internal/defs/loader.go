// internal/defs/loader.go
package defs

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// enemyOverride is one entry of the enemy tuning file. Нулевые поля не меняют значение по умолчанию.
type enemyOverride struct {
	Class   string  `mapstructure:"class"`
	Health  int     `mapstructure:"health"`
	MinSize float64 `mapstructure:"min_size"`
	MaxSize float64 `mapstructure:"max_size"`
	Color   string  `mapstructure:"color"` // "#rrggbb"
	Points  int     `mapstructure:"points"`
}

// ParseEnemyClass accepts the names printed by EnemyClass.String, in any case.
func ParseEnemyClass(s string) (EnemyClass, error) {
	for c := EnemyLight; c <= EnemyHeavy; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy class %q", s)
}

func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}

// LoadEnemyDefinitions reads a YAML tuning file with an `enemies` list and
// merges it into EnemyDefs. Nothing changes unless every entry is valid.
func LoadEnemyDefinitions(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var overrides []enemyOverride
	if err := v.UnmarshalKey("enemies", &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	merged := make(map[EnemyClass]EnemyDefinition, len(EnemyDefs))
	for c, def := range EnemyDefs {
		merged[c] = def
	}
	for i, o := range overrides {
		class, err := ParseEnemyClass(o.Class)
		if err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
		def := merged[class]
		if o.Health != 0 {
			def.Health = o.Health
		}
		if o.MinSize != 0 {
			def.MinSize = o.MinSize
		}
		if o.MaxSize != 0 {
			def.MaxSize = o.MaxSize
		}
		if o.Points != 0 {
			def.Points = o.Points
		}
		if o.Color != "" {
			if def.Color, err = parseHexColor(o.Color); err != nil {
				return fmt.Errorf("enemy %s: %w", class, err)
			}
		}
		if def.Health <= 0 || def.MinSize <= 0 || def.MaxSize <= def.MinSize || def.Points < 0 {
			return fmt.Errorf("enemy %s: invalid definition %+v", class, def)
		}
		merged[class] = def
	}

	EnemyDefs = merged
	log.Printf("Loaded %d enemy overrides from %s", len(overrides), path)
	return nil
}
